// Package device holds the controller codecs padshape reads from and renders to.
package device

// ReportBuilder is implemented by output states that can be encoded into a
// USB input report.
type ReportBuilder interface {
	// BuildReport encodes the input state into a byte slice for USB transfer.
	BuildReport() []byte
}
