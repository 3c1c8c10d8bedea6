// Package inkml reads CROHME-style InkML documents and exposes them as raw
// samples for the extraction pipeline.  Only the two elements the pipeline
// needs are mapped: the UI annotation (sample identifier) and the trace
// elements (per-stroke coordinate text, in document order).
package inkml

import (
	"encoding/xml"
	"io"
	"os"
	"strings"

	"github.com/turtacn/Ink-Intelligence/internal/domain/ink"
	"github.com/turtacn/Ink-Intelligence/pkg/errors"
)

// uiAnnotationType is the annotation type attribute carrying the sample
// identifier in CROHME files.
const uiAnnotationType = "UI"

type inkDocument struct {
	XMLName     xml.Name     `xml:"ink"`
	Annotations []annotation `xml:"annotation"`
	Traces      []string     `xml:"trace"`
}

type annotation struct {
	Type  string `xml:"type,attr"`
	Value string `xml:",chardata"`
}

// Read decodes one InkML document into a RawSample.
//
// The identifier is taken from the annotation with type "UI"; files without
// type attributes fall back to the second annotation element, which is where
// CROHME places the UI.  A missing or blank identifier is the per-sample
// hard error ErrCodeMissingIdentifier — it is never silently defaulted.
func Read(r io.Reader) (ink.RawSample, error) {
	var doc inkDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return ink.RawSample{}, errors.Wrap(err, errors.ErrCodeInkMLParse, "failed to decode InkML document")
	}

	id := identifierOf(doc.Annotations)
	if id == "" {
		return ink.RawSample{}, errors.New(errors.ErrCodeMissingIdentifier, "InkML document carries no UI annotation")
	}

	return ink.RawSample{ID: id, Traces: doc.Traces}, nil
}

// ReadFile opens and decodes the InkML file at path.
func ReadFile(path string) (ink.RawSample, error) {
	f, err := os.Open(path)
	if err != nil {
		return ink.RawSample{}, errors.Wrap(err, errors.ErrCodeSampleSourceRead, "failed to open sample file").WithDetail(path)
	}
	defer f.Close()

	sample, err := Read(f)
	if err != nil {
		if app := (*errors.AppError)(nil); errors.As(err, &app) {
			return ink.RawSample{}, app.WithDetail(path)
		}
		return ink.RawSample{}, err
	}
	return sample, nil
}

func identifierOf(annotations []annotation) string {
	for _, a := range annotations {
		if a.Type == uiAnnotationType {
			return strings.TrimSpace(a.Value)
		}
	}
	if len(annotations) > 1 {
		return strings.TrimSpace(annotations[1].Value)
	}
	return ""
}
