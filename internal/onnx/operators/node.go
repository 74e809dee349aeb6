//go:build !wasm

package operators

// Node represents an ONNX operation node.
type Node struct {
	Name       string      // Node name (optional)
	OpType     string      // Operation type (e.g., "ReduceSum")
	Inputs     []string    // Input tensor names
	Outputs    []string    // Output tensor names
	Attributes []Attribute // Operation attributes
	Domain     string      // Custom domain (empty for default)
}

// Attribute represents a node attribute. Reduce operators only carry INT and INTS
// attributes.
type Attribute struct {
	Name string  // Attribute name
	I    int64   // INT value
	Ints []int64 // INTS array
}

// IntAttr builds an INT attribute.
func IntAttr(name string, value int64) Attribute {
	return Attribute{Name: name, I: value}
}

// IntsAttr builds an INTS attribute.
func IntsAttr(name string, values ...int64) Attribute {
	return Attribute{Name: name, Ints: values}
}

// GetAttrInt returns an integer attribute or default value.
func GetAttrInt(node *Node, name string, defaultVal int64) int64 {
	for i := range node.Attributes {
		if node.Attributes[i].Name == name {
			return node.Attributes[i].I
		}
	}
	return defaultVal
}

// GetAttrInts returns an integer array attribute.
func GetAttrInts(node *Node, name string) []int64 {
	for i := range node.Attributes {
		if node.Attributes[i].Name == name {
			return node.Attributes[i].Ints
		}
	}
	return nil
}
