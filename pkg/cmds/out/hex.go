package out

// HexDump is the output of the hexdump command: the raw bytes of one
// file. Formatting into offset, hex, and text columns is renderer
// work; serializers see the bytes as base64.
type HexDump struct {
	// Path is the dumped file as given on the command line.
	Path string `json:"path" yaml:"path" toml:"path"`

	// Size is the byte length of Data.
	Size int64 `json:"size" yaml:"size" toml:"size"`

	// Data is the full file content.
	Data []byte `json:"data" yaml:"data" toml:"data"`
}
