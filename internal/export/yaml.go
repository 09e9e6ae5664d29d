package export

import (
	"fmt"
	"io"

	"github.com/iksnae/exoquery/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter writes the transcript as a YAML document. Visualization
// rows keep the field order the backend sent.
type YAMLExporter struct{}

// Export writes session as YAML
func (e *YAMLExporter) Export(session *internal.Session, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(counted(session)); err != nil {
		_ = enc.Close()
		return fmt.Errorf("failed to encode session %s: %w", session.ID, err)
	}
	return enc.Close()
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
