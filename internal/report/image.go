package report

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"os"
	"runtime"

	"github.com/fogleman/gg"

	"nivaran/internal/complaint"
)

// Table styling constants — rendered at 2x scale for Telegram clarity
const (
	cellPaddingX = 20
	cellPaddingY = 16
	rowHeight    = 72.0
	headerHeight = 88.0
	fontSize     = 26.0
	titleFontSz  = 40.0
	titlePadding = 110.0
	maxDescWidth = 460.0
)

// Light theme colors
var (
	bgColor         = color.RGBA{R: 245, G: 247, B: 250, A: 255}
	titleColor      = color.RGBA{R: 30, G: 41, B: 59, A: 255}
	headerBgColor   = color.RGBA{R: 37, G: 99, B: 235, A: 255}
	headerTextColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	rowEvenColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	rowOddColor     = color.RGBA{R: 241, G: 245, B: 249, A: 255}
	textColor       = color.RGBA{R: 30, G: 41, B: 59, A: 255}
	borderColor     = color.RGBA{R: 203, G: 213, B: 225, A: 255}
)

// column defines one table column over a complaint record.
type column struct {
	header   string
	field    func(r *complaint.Record) string
	maxWidth float64 // 0 means auto
}

// columns defines the table layout for the report image.
var columns = []column{
	{"ID", func(r *complaint.Record) string { return fmt.Sprintf("%d", r.ID) }, 0},
	{"Sector", func(r *complaint.Record) string { return string(r.Sector) }, 0},
	{"Priority", func(r *complaint.Record) string { return string(r.Priority) }, 0},
	{"Status", func(r *complaint.Record) string { return string(r.Status) }, 0},
	{"Pincode", func(r *complaint.Record) string { return r.Pincode }, 0},
	{"Description", func(r *complaint.Record) string { return truncate(r.Description, 60) }, maxDescWidth},
	{"Date", func(r *complaint.Record) string { return r.Date() }, 0},
}

// truncate shortens long descriptions for the table cell.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-2]) + ".."
}

// findFont locates a font file across Linux and Windows paths.
func findFont(bold bool) string {
	var candidates []string
	if runtime.GOOS == "windows" {
		winRoot := os.Getenv("WINDIR")
		if winRoot == "" {
			winRoot = `C:\Windows`
		}
		if bold {
			candidates = []string{winRoot + `\Fonts\arialbd.ttf`}
		} else {
			candidates = []string{winRoot + `\Fonts\arial.ttf`}
		}
	} else {
		if bold {
			candidates = []string{
				"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
				"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
			}
		} else {
			candidates = []string{
				"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
				"/usr/share/fonts/TTF/DejaVuSans.ttf",
			}
		}
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return candidates[0]
}

// RenderTable renders recent complaints as a table image and returns PNG
// bytes for the Telegram photo upload.
func RenderTable(records []complaint.Record) ([]byte, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no complaints to render")
	}

	boldFont := findFont(true)
	regularFont := findFont(false)

	// Measure column widths with a throwaway context.
	measure := gg.NewContext(1, 1)
	if err := measure.LoadFontFace(boldFont, fontSize); err != nil {
		return nil, fmt.Errorf("failed to load font %s: %w", boldFont, err)
	}
	widths := make([]float64, len(columns))
	for i, col := range columns {
		w, _ := measure.MeasureString(col.header)
		widths[i] = w + cellPaddingX*2
	}
	if err := measure.LoadFontFace(regularFont, fontSize); err != nil {
		return nil, fmt.Errorf("failed to load font %s: %w", regularFont, err)
	}
	for i, col := range columns {
		for r := range records {
			w, _ := measure.MeasureString(col.field(&records[r]))
			w += cellPaddingX * 2
			if col.maxWidth > 0 && w > col.maxWidth {
				w = col.maxWidth
			}
			if w > widths[i] {
				widths[i] = w
			}
		}
	}

	tableWidth := 0.0
	for _, w := range widths {
		tableWidth += w
	}
	width := int(tableWidth) + cellPaddingX*2
	height := int(titlePadding+headerHeight+rowHeight*float64(len(records))) + cellPaddingY*2

	dc := gg.NewContext(width, height)
	dc.SetColor(bgColor)
	dc.Clear()

	// Title
	if err := dc.LoadFontFace(boldFont, titleFontSz); err != nil {
		return nil, fmt.Errorf("failed to load font %s: %w", boldFont, err)
	}
	dc.SetColor(titleColor)
	dc.DrawStringAnchored("Recent Grievances", float64(width)/2, titlePadding/2, 0.5, 0.5)

	// Header row
	x := float64(cellPaddingX)
	y := titlePadding
	dc.SetColor(headerBgColor)
	dc.DrawRectangle(x, y, tableWidth, headerHeight)
	dc.Fill()
	if err := dc.LoadFontFace(boldFont, fontSize); err != nil {
		return nil, fmt.Errorf("failed to load font %s: %w", boldFont, err)
	}
	dc.SetColor(headerTextColor)
	cx := x
	for i, col := range columns {
		dc.DrawStringAnchored(col.header, cx+widths[i]/2, y+headerHeight/2, 0.5, 0.5)
		cx += widths[i]
	}

	// Data rows
	if err := dc.LoadFontFace(regularFont, fontSize); err != nil {
		return nil, fmt.Errorf("failed to load font %s: %w", regularFont, err)
	}
	y += headerHeight
	for r := range records {
		if r%2 == 0 {
			dc.SetColor(rowEvenColor)
		} else {
			dc.SetColor(rowOddColor)
		}
		dc.DrawRectangle(x, y, tableWidth, rowHeight)
		dc.Fill()

		dc.SetColor(textColor)
		cx = x
		for i, col := range columns {
			dc.DrawStringAnchored(col.field(&records[r]), cx+widths[i]/2, y+rowHeight/2, 0.5, 0.5)
			cx += widths[i]
		}

		dc.SetColor(borderColor)
		dc.SetLineWidth(1)
		dc.DrawLine(x, y, x+tableWidth, y)
		dc.Stroke()

		y += rowHeight
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, fmt.Errorf("failed to encode report image: %w", err)
	}
	return buf.Bytes(), nil
}
