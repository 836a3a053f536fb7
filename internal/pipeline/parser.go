package pipeline

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/video_sorter/internal/domain"
	"github.com/xuri/excelize/v2"
)

const ManifestExtension = ".xlsx"

type Parser struct {
	log *slog.Logger
}

func NewParser(log *slog.Logger) *Parser {
	return &Parser{log: log}
}

// ParseManifest decodes every data row of the first worksheet. The header row must
// contain all ManifestRow columns; extra columns are ignored.
func (p *Parser) ParseManifest(path string) (_ []*domain.ManifestRow, err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("manifest has no worksheets")
	}

	rows, err := f.Rows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %q: %w", sheets[0], err)
	}
	defer func() { err = errors.Join(err, rows.Close()) }()

	return p.parseRecords(&sheetReader{rows: rows})
}

func (p *Parser) parseRecords(r csvutil.Reader) ([]*domain.ManifestRow, error) {
	dec, err := csvutil.NewDecoder(r)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("manifest has no header row")
		}
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	dec.DisallowMissingColumns = true

	if err := checkColumns(dec.Header()); err != nil {
		return nil, err
	}

	p.log.Debug("parsing manifest rows", slog.Any("header", dec.Header()))

	var manifest []*domain.ManifestRow
	for {
		var row domain.ManifestRow

		err := dec.Decode(&row)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to decode manifest row #%d: %w", len(manifest)+1, err)
		}

		manifest = append(manifest, &row)
	}

	p.log.Debug("successfully parsed manifest", slog.Int("row_count", len(manifest)))

	return manifest, nil
}

func checkColumns(header []string) error {
	present := make(map[string]struct{}, len(header))
	for _, h := range header {
		present[h] = struct{}{}
	}

	var missing []string
	for _, col := range domain.ManifestColumns {
		if _, ok := present[col]; !ok {
			missing = append(missing, col)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("manifest is missing required columns: %s", strings.Join(missing, ", "))
	}

	return nil
}

// sheetReader adapts worksheet rows to csvutil.Reader. Blank rows are skipped and
// every record is padded or cut to the header width, so empty cells decode as "".
type sheetReader struct {
	rows  *excelize.Rows
	width int
}

func (r *sheetReader) Read() ([]string, error) {
	for r.rows.Next() {
		cols, err := r.rows.Columns()
		if err != nil {
			return nil, err
		}

		if isBlank(cols) {
			continue
		}

		if r.width == 0 {
			r.width = len(cols)
		}

		return fitWidth(cols, r.width), nil
	}

	if err := r.rows.Error(); err != nil {
		return nil, err
	}

	return nil, io.EOF
}

func fitWidth(cols []string, width int) []string {
	if len(cols) >= width {
		return cols[:width]
	}

	padded := make([]string, width)
	copy(padded, cols)

	return padded
}

func isBlank(cols []string) bool {
	for _, c := range cols {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}
