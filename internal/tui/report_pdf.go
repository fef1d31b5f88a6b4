package tui

import (
	"fmt"
	"os"
	"time"

	"github.com/akyairhashvil/countdown/internal/countdown"
	"github.com/akyairhashvil/countdown/internal/models"
	"github.com/akyairhashvil/countdown/internal/util"
	"github.com/go-pdf/fpdf"
)

// unicodeFontCandidates are TrueType fonts with CJK coverage that are common
// on desktop systems. fpdf cannot read .ttc or CFF .otf files.
var unicodeFontCandidates = []string{
	"/usr/share/fonts/truetype/droid/DroidSansFallbackFull.ttf",
	"/usr/share/fonts/truetype/droid/DroidSansFallback.ttf",
	"/usr/share/fonts/truetype/arphic-gkai00mp/gkai00mp.ttf",
	"/Library/Fonts/Arial Unicode.ttf",
	"/System/Library/Fonts/Supplemental/Arial Unicode.ttf",
	`C:\Windows\Fonts\simhei.ttf`,
	`C:\Windows\Fonts\simkai.ttf`,
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
}

const unicodeFamily = "countdown-unicode"

// reportFont is the font setup for one sheet.
type reportFont struct {
	family string
	data   []byte
	tr     func(string) string
}

// loadReportFont uses fontPath, or the first usable candidate when fontPath
// is empty. Without a usable TrueType font the sheet falls back to Arial and
// cp1252, where characters outside that code page are lost.
func loadReportFont(fontPath string) reportFont {
	candidates := unicodeFontCandidates
	if fontPath != "" {
		candidates = []string{fontPath}
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if !isTrueType(data) {
			util.Log.WithField("font", path).Warn("report font is not a TrueType file")
			continue
		}
		// A failed font load poisons the document, so try it on a scratch one.
		scratch := fpdf.New("P", "mm", "A4", "")
		scratch.AddUTF8FontFromBytes(unicodeFamily, "", data)
		scratch.SetFont(unicodeFamily, "", 12)
		if err := scratch.Error(); err != nil {
			util.Log.WithField("font", path).Warnf("unusable report font: %v", err)
			continue
		}
		return reportFont{family: unicodeFamily, data: data, tr: func(s string) string { return s }}
	}
	if fontPath != "" {
		util.Log.WithField("font", fontPath).Warn("report font not found, using Arial")
	}
	return reportFont{family: "Arial"}
}

func isTrueType(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	magic := string(data[:4])
	return magic == "\x00\x01\x00\x00" || magic == "true"
}

func (f reportFont) unicode() bool { return f.data != nil }

// GenerateCountdownReport writes an A4 sheet listing every countdown with its
// days remaining, followed by the encouragements. fontPath may name a
// TrueType font; empty means search the usual system locations.
func GenerateCountdownReport(cfg models.Config, now time.Time, path, fontPath string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	font := loadReportFont(fontPath)
	tr := font.tr
	if font.unicode() {
		pdf.AddUTF8FontFromBytes(font.family, "", font.data)
		pdf.AddUTF8FontFromBytes(font.family, "B", font.data)
	} else {
		tr = pdf.UnicodeTranslatorFromDescriptor("")
	}

	pdf.AddPage()
	pdf.SetFont(font.family, "B", 16)
	pdf.Cell(40, 10, tr(cfg.Name))
	pdf.Ln(8)
	pdf.SetFont(font.family, "", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Generated %s", now.Format("2006-01-02 15:04")))
	pdf.Ln(12)

	pdf.SetFont(font.family, "B", 12)
	pdf.CellFormat(80, 8, "Countdown", "B", 0, "", false, 0, "")
	pdf.CellFormat(40, 8, "Date", "B", 0, "", false, 0, "")
	pdf.CellFormat(40, 8, "Days left", "B", 1, "R", false, 0, "")
	pdf.SetFont(font.family, "", 12)
	if len(cfg.Countdowns) == 0 {
		pdf.Cell(0, 8, "  - No countdowns configured.")
		pdf.Ln(8)
	}
	for _, cd := range cfg.Countdowns {
		days := "-"
		if target, err := cd.Target(); err == nil {
			days = fmt.Sprintf("%d", countdown.DaysRemaining(target, now))
		}
		pdf.CellFormat(80, 8, tr(cd.Name), "", 0, "", false, 0, "")
		pdf.CellFormat(40, 8, tr(cd.Date), "", 0, "", false, 0, "")
		pdf.CellFormat(40, 8, days, "", 1, "R", false, 0, "")
	}

	if len(cfg.Encouragements) > 0 {
		pdf.Ln(8)
		pdf.SetFont(font.family, "B", 14)
		pdf.Cell(0, 10, "Encouragements")
		pdf.Ln(8)
		pdf.SetFont(font.family, "", 12)
		for _, e := range cfg.Encouragements {
			pdf.MultiCell(0, 8, tr("- "+e), "", "", false)
		}
	}
	return pdf.OutputFileAndClose(path)
}
