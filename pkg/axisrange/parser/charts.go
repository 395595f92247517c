package parser

import (
	"archive/zip"
	"encoding/xml"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ukaji3/axisrange-go/pkg/axisrange/models"
)

// ChartTypeMap maps OOXML chart element tags to chart type names.
var ChartTypeMap = map[string]string{
	"lineChart":      "Line",
	"line3DChart":    "3DLine",
	"barChart":       "Bar",
	"bar3DChart":     "3DBar",
	"areaChart":      "Area",
	"area3DChart":    "3DArea",
	"scatterChart":   "XYScatter",
	"bubbleChart":    "Bubble",
	"radarChart":     "Radar",
	"surfaceChart":   "Surface",
	"surface3DChart": "3DSurface",
	"stockChart":     "Stock",
}

// polarChartTypes lists the chart types drawn on a circular category axis.
var polarChartTypes = map[string]bool{
	"Radar": true,
}

// anchor is a drawing anchor holding a chart frame.
type anchor struct {
	From         *marker       `xml:"from"`
	To           *marker       `xml:"to"`
	Ext          *extent       `xml:"ext"`
	GraphicFrame *graphicFrame `xml:"graphicFrame"`
}

type marker struct {
	Col    int   `xml:"col"`
	ColOff int64 `xml:"colOff"`
	Row    int   `xml:"row"`
	RowOff int64 `xml:"rowOff"`
}

type extent struct {
	Cx int64 `xml:"cx,attr"`
	Cy int64 `xml:"cy,attr"`
}

type graphicFrame struct {
	NvGraphicFramePr struct {
		CNvPr struct {
			Name string `xml:"name,attr"`
		} `xml:"cNvPr"`
	} `xml:"nvGraphicFramePr"`
	Xfrm struct {
		Ext extent `xml:"ext"`
	} `xml:"xfrm"`
	Graphic struct {
		GraphicData struct {
			Chart *struct {
				ID string `xml:"id,attr"`
			} `xml:"chart"`
		} `xml:"graphicData"`
	} `xml:"graphic"`
}

// chartFrame is a chart reference found in a drawing part.
type chartFrame struct {
	name   string
	rID    string
	width  int
	height int
}

// chartSpace mirrors the parts of c:chartSpace needed for axis resolution.
type chartSpace struct {
	Chart struct {
		Title    *richTitle `xml:"title"`
		PlotArea struct {
			Elements []plotElement `xml:",any"`
		} `xml:"plotArea"`
	} `xml:"chart"`
}

// plotElement is any child of c:plotArea: a chart group (c:radarChart, ...)
// or an axis (c:catAx, c:valAx).
type plotElement struct {
	XMLName xml.Name
	Series  []chartSeries `xml:"ser"`
	Scaling *scaling      `xml:"scaling"`
}

type chartSeries struct {
	Tx   *dataRef `xml:"tx"`
	Cat  *dataRef `xml:"cat"`
	Val  *dataRef `xml:"val"`
	XVal *dataRef `xml:"xVal"`
	YVal *dataRef `xml:"yVal"`
}

type dataRef struct {
	StrRef *formulaRef `xml:"strRef"`
	NumRef *formulaRef `xml:"numRef"`
	V      string      `xml:"v"`
}

type formulaRef struct {
	F string `xml:"f"`
}

func (d *dataRef) formula() string {
	switch {
	case d == nil:
		return ""
	case d.NumRef != nil:
		return strings.TrimSpace(d.NumRef.F)
	case d.StrRef != nil:
		return strings.TrimSpace(d.StrRef.F)
	}
	return ""
}

type scaling struct {
	Orientation *valAttr `xml:"orientation"`
	Max         *valAttr `xml:"max"`
	Min         *valAttr `xml:"min"`
}

type valAttr struct {
	Val string `xml:"val,attr"`
}

type richTitle struct {
	Paragraphs []struct {
		Runs []struct {
			T string `xml:"t"`
		} `xml:"r"`
	} `xml:"tx>rich>p"`
}

func (t *richTitle) text() string {
	if t == nil {
		return ""
	}
	var parts []string
	for _, p := range t.Paragraphs {
		var b strings.Builder
		for _, r := range p.Runs {
			b.WriteString(r.T)
		}
		if s := strings.TrimSpace(b.String()); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// ExtractCharts returns every chart of the workbook, in sheet and drawing order.
// Chart parts that cannot be parsed are skipped and logged at warn level; a nil
// logger discards them.
func ExtractCharts(xlsxPath string, logger *zap.Logger) ([]models.ChartSource, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	if logger == nil {
		logger = zap.NewNop()
	}
	return extractCharts(&r.Reader, logger)
}

func extractCharts(r *zip.Reader, log *zap.Logger) ([]models.ChartSource, error) {
	sheets, err := sheetParts(r)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(sheets))
	for name := range sheets {
		names = append(names, name)
	}
	sort.Strings(names)

	var result []models.ChartSource
	for _, sheetName := range names {
		drawingPath, err := relatedPart(r, sheets[sheetName], "drawing")
		if err != nil {
			return nil, err
		}
		if drawingPath == "" {
			continue
		}

		drawingXML, err := readZipFile(r, drawingPath)
		if err != nil {
			return nil, err
		}
		if drawingXML == nil {
			continue
		}

		chartPaths, err := relatedParts(r, drawingPath, "chart")
		if err != nil {
			return nil, err
		}

		for _, frame := range parseDrawingForCharts(drawingXML) {
			chartPath, ok := chartPaths[frame.rID]
			if !ok {
				continue
			}
			chartXML, err := readZipFile(r, chartPath)
			if err != nil {
				return nil, err
			}
			if chartXML == nil {
				continue
			}
			src, err := parseChartXML(chartXML)
			if err != nil {
				log.Warn("skipping unreadable chart part",
					zap.String("sheet", sheetName),
					zap.String("chart", frame.name),
					zap.String("part", chartPath),
					zap.Error(err))
				continue
			}
			src.Sheet = sheetName
			src.Name = frame.name
			src.W, src.H = frame.width, frame.height
			result = append(result, *src)
		}
	}

	return result, nil
}

// parseDrawingForCharts returns the chart frames of a drawing part in document order.
func parseDrawingForCharts(data []byte) []chartFrame {
	var result []chartFrame
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		se, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "twoCellAnchor", "oneCellAnchor", "absoluteAnchor":
			var a anchor
			if err := decoder.DecodeElement(&a, &se); err != nil {
				continue
			}
			if frame, ok := a.chartFrame(); ok {
				result = append(result, frame)
			}
		}
	}

	return result
}

func (a anchor) chartFrame() (chartFrame, bool) {
	gf := a.GraphicFrame
	if gf == nil || gf.Graphic.GraphicData.Chart == nil || gf.Graphic.GraphicData.Chart.ID == "" {
		return chartFrame{}, false
	}

	frame := chartFrame{
		name:   gf.NvGraphicFramePr.CNvPr.Name,
		rID:    gf.Graphic.GraphicData.Chart.ID,
		width:  EMUToPixels(gf.Xfrm.Ext.Cx),
		height: EMUToPixels(gf.Xfrm.Ext.Cy),
	}
	switch {
	case frame.width > 0 && frame.height > 0:
	case a.Ext != nil:
		frame.width, frame.height = EMUToPixels(a.Ext.Cx), EMUToPixels(a.Ext.Cy)
	case a.From != nil && a.To != nil:
		frame.width = anchorSpan(a.From.Col, a.From.ColOff, a.To.Col, a.To.ColOff, DefaultColumnWidthPixels)
		frame.height = anchorSpan(a.From.Row, a.From.RowOff, a.To.Row, a.To.RowOff, DefaultRowHeightPixels)
	}
	return frame, true
}

// parseChartXML parses a chart part into a chart source without sheet or frame data.
func parseChartXML(data []byte) (*models.ChartSource, error) {
	var cs chartSpace
	if err := xml.Unmarshal(data, &cs); err != nil {
		return nil, err
	}

	src := &models.ChartSource{
		ChartType: "unknown",
		Title:     cs.Chart.Title.text(),
	}

	valAxes := 0
	for _, el := range cs.Chart.PlotArea.Elements {
		if ct, ok := ChartTypeMap[el.XMLName.Local]; ok {
			if src.ChartType == "unknown" {
				src.ChartType = ct
				src.Polar = polarChartTypes[ct]
			}
			for _, s := range el.Series {
				src.Series = append(src.Series, seriesRef(s))
			}
			continue
		}

		switch el.XMLName.Local {
		case "catAx", "dateAx":
			applyScaling(&src.XAxis, el.Scaling)
		case "valAx":
			valAxes++
			// Scatter charts carry two value axes; the first one is horizontal.
			if src.ChartType == "XYScatter" && valAxes == 1 {
				applyScaling(&src.XAxis, el.Scaling)
				src.XAxis.Type = models.AxisLinear
				continue
			}
			applyScaling(&src.YAxis, el.Scaling)
		}
	}

	return src, nil
}

func seriesRef(s chartSeries) models.SeriesRef {
	ref := models.SeriesRef{
		NameRange:     s.Tx.formula(),
		CategoryRange: s.Cat.formula(),
		ValueRange:    s.Val.formula(),
		XRange:        s.XVal.formula(),
	}
	// Scatter and bubble series keep their values in c:yVal.
	if ref.ValueRange == "" {
		ref.ValueRange = s.YVal.formula()
	}
	if s.Tx != nil {
		ref.Name = strings.TrimSpace(s.Tx.V)
	}
	return ref
}

// applyScaling copies c:scaling bounds and orientation into axis options.
func applyScaling(opts *models.AxisOptions, sc *scaling) {
	if sc == nil {
		return
	}
	if sc.Orientation != nil && sc.Orientation.Val == "maxMin" {
		opts.Reversed = true
	}
	if sc.Min != nil {
		if v, err := strconv.ParseFloat(sc.Min.Val, 64); err == nil {
			opts.Min = &v
		}
	}
	if sc.Max != nil {
		if v, err := strconv.ParseFloat(sc.Max.Val, 64); err == nil {
			opts.Max = &v
		}
	}
}
