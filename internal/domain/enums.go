package domain

// SampleFormat represents the allowed tabular formats for sample upload.
type SampleFormat string

const (
	SampleFormatCSV  SampleFormat = "csv"
	SampleFormatTSV  SampleFormat = "tsv"
	SampleFormatXLSX SampleFormat = "xlsx"
)

// AllowedSampleExtensions maps file extensions (without dot) to SampleFormat.
var AllowedSampleExtensions = map[string]SampleFormat{
	"csv":  SampleFormatCSV,
	"tsv":  SampleFormatTSV,
	"tab":  SampleFormatTSV,
	"xlsx": SampleFormatXLSX,
}

// Delimiter returns the column delimiter used when re-serializing a sample
// in the given format. XLSX samples are re-serialized as CSV text.
func (f SampleFormat) Delimiter() rune {
	if f == SampleFormatTSV {
		return '\t'
	}
	return ','
}
