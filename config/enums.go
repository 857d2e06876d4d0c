package config

//go:generate go tool go-enum --names --nocase

// Specification of rendered tree representation.
// ENUM(tree, xml)
type OutputFormat int

// Ext returns file name extension for outputs of this format.
func (o OutputFormat) Ext() string {
	switch o {
	case OutputFormatTree:
		return ".tree.txt"
	case OutputFormatXml:
		return ".xml"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}
