package report_generator

import (
	"fmt"
	"strconv"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/kurochkinivan/video_sorter/internal/domain"
)

const timeLayout = "2006-01-02 15:04:05"

var (
	titleProps   = props.Text{Size: 16, Style: fontstyle.Bold, Align: align.Center}
	sectionProps = props.Text{Size: 12, Style: fontstyle.Bold, Top: 4}
	headerProps  = props.Text{Size: 9, Style: fontstyle.Bold}
	cellProps    = props.Text{Size: 9}
)

type Generator struct{}

func New() *Generator {
	return &Generator{}
}

// GenerateReport renders a finished run as a PDF document.
func (g *Generator) GenerateReport(result *domain.RunResult) ([]byte, error) {
	cfg := config.NewBuilder().
		WithLeftMargin(10).
		WithRightMargin(10).
		WithTopMargin(10).
		Build()

	m := maroto.New(cfg)

	m.AddRows(text.NewRow(12, "Video sorting report", titleProps))
	m.AddRows(g.summary(result)...)

	m.AddRows(text.NewRow(10, fmt.Sprintf("Files not found (%d)", len(result.NotFound)), sectionProps))
	if len(result.NotFound) == 0 {
		m.AddRows(text.NewRow(6, "None", cellProps))
	}
	for _, name := range result.NotFound {
		m.AddRows(text.NewRow(6, name, cellProps))
	}

	m.AddRows(text.NewRow(10, fmt.Sprintf("Failed copies (%d)", len(result.FailedCopies)), sectionProps))
	if len(result.FailedCopies) == 0 {
		m.AddRows(text.NewRow(6, "None", cellProps))
	} else {
		m.AddRow(7,
			text.NewCol(3, "Original file", headerProps),
			text.NewCol(4, "Destination", headerProps),
			text.NewCol(5, "Error", headerProps),
		)
	}
	for _, fc := range result.FailedCopies {
		m.AddAutoRow(
			text.NewCol(3, fc.OriginalFile, cellProps),
			text.NewCol(4, fc.Destination, cellProps),
			text.NewCol(5, fc.Error, cellProps),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate report: %w", err)
	}

	return doc.GetBytes(), nil
}

func (g *Generator) summary(result *domain.RunResult) []core.Row {
	lines := [][2]string{
		{"Run", result.RunID},
		{"Started at", result.StartedAt.Format(timeLayout)},
		{"Rows", strconv.Itoa(result.TotalRows)},
		{"Execution time", fmt.Sprintf("%.2f seconds", result.ElapsedSeconds())},
	}

	rows := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, text.NewRow(6, l[0]+": "+l[1], cellProps))
	}

	return rows
}
