// Package dataset assembles processed samples into a tabular CSV dataset.
// It is the sole owner of the persisted representation; the extraction core
// defines no on-disk format of its own.
package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/turtacn/Ink-Intelligence/internal/domain/ink"
	"github.com/turtacn/Ink-Intelligence/pkg/errors"
)

// directionSeparator joins the direction codes of one sample into a single
// CSV field.
const directionSeparator = "|"

// Header is the column layout of the dataset, one row per sample.
var Header = []string{
	"ui",
	"num_points",
	"num_strokes",
	"directions",
	"curvature",
	"aspect_ratio",
	"freq_x_0", "freq_x_1", "freq_x_2", "freq_x_3", "freq_x_4",
	"freq_y_0", "freq_y_1", "freq_y_2", "freq_y_3", "freq_y_4",
	"symbol",
}

// Write streams samples as CSV to w, header first.
func Write(w io.Writer, samples []*ink.Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return errors.Wrap(err, errors.ErrCodeDatasetWrite, "failed to write dataset header")
	}
	for _, s := range samples {
		if err := cw.Write(Row(s)); err != nil {
			return errors.Wrap(err, errors.ErrCodeDatasetWrite, "failed to write dataset row").WithDetail("ui=" + s.ID)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Wrap(err, errors.ErrCodeDatasetWrite, "failed to flush dataset")
	}
	return nil
}

// WriteFile writes the dataset to path, creating or truncating the file.
func WriteFile(path string, samples []*ink.Sample) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatasetWrite, "failed to create dataset file").WithDetail(path)
	}
	if err := Write(f, samples); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, errors.ErrCodeDatasetWrite, "failed to close dataset file").WithDetail(path)
	}
	return nil
}

// Row renders one sample as a CSV record in Header order.
func Row(s *ink.Sample) []string {
	fv := s.Features
	row := make([]string, 0, len(Header))
	row = append(row,
		s.ID,
		strconv.Itoa(fv.NumPoints),
		strconv.Itoa(fv.NumStrokes),
		EncodeDirections(fv.Directions),
		strconv.FormatFloat(fv.Curvature, 'g', -1, 64),
		strconv.FormatFloat(fv.AspectRatio, 'g', -1, 64),
	)
	for _, n := range fv.XHistogram {
		row = append(row, strconv.Itoa(n))
	}
	for _, n := range fv.YHistogram {
		row = append(row, strconv.Itoa(n))
	}
	return append(row, s.Label)
}

// EncodeDirections renders a direction sequence in its numeric wire form,
// e.g. [up right] → "1|4".
func EncodeDirections(dirs []ink.Direction) string {
	if len(dirs) == 0 {
		return ""
	}
	parts := make([]string, len(dirs))
	for i, d := range dirs {
		parts[i] = strconv.Itoa(int(d))
	}
	return strings.Join(parts, directionSeparator)
}
