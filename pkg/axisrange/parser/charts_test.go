package parser

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ukaji3/axisrange-go/pkg/axisrange/models"
)

const radarChartXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<c:chartSpace xmlns:c="http://schemas.openxmlformats.org/drawingml/2006/chart" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
<c:chart>
<c:title><c:tx><c:rich><a:bodyPr/><a:p><a:r><a:t>Budget</a:t></a:r><a:r><a:t> 2024</a:t></a:r></a:p></c:rich></c:tx></c:title>
<c:plotArea><c:layout/>
<c:radarChart><c:radarStyle val="marker"/>
<c:ser><c:idx val="0"/><c:order val="0"/>
<c:tx><c:strRef><c:f>Sheet1!$A$2</c:f></c:strRef></c:tx>
<c:cat><c:strRef><c:f>Sheet1!$B$1:$G$1</c:f></c:strRef></c:cat>
<c:val><c:numRef><c:f>Sheet1!$B$2:$G$2</c:f></c:numRef></c:val>
</c:ser>
<c:ser><c:idx val="1"/><c:order val="1"/>
<c:tx><c:v>Inline</c:v></c:tx>
<c:val><c:numRef><c:f>'Data Sheet'!$B$3:$G$3</c:f></c:numRef></c:val>
</c:ser>
<c:axId val="1"/><c:axId val="2"/>
</c:radarChart>
<c:catAx><c:axId val="1"/><c:scaling><c:orientation val="maxMin"/></c:scaling><c:delete val="0"/></c:catAx>
<c:valAx><c:axId val="2"/><c:scaling><c:orientation val="minMax"/><c:max val="70000"/><c:min val="-10"/></c:scaling></c:valAx>
</c:plotArea>
</c:chart>
</c:chartSpace>`

func TestParseChartXML(t *testing.T) {
	src, err := parseChartXML([]byte(radarChartXML))
	if err != nil {
		t.Fatalf("parseChartXML failed: %v", err)
	}

	if src.ChartType != "Radar" || !src.Polar {
		t.Errorf("Expected polar Radar chart, got %q polar=%v", src.ChartType, src.Polar)
	}
	if src.Title != "Budget 2024" {
		t.Errorf("Expected title 'Budget 2024', got %q", src.Title)
	}
	if !src.XAxis.Reversed {
		t.Errorf("Expected reversed category axis")
	}
	if src.YAxis.Reversed {
		t.Errorf("Expected value axis in minMax orientation")
	}
	if src.YAxis.Min == nil || *src.YAxis.Min != -10 {
		t.Errorf("Expected value axis min -10, got %v", src.YAxis.Min)
	}
	if src.YAxis.Max == nil || *src.YAxis.Max != 70000 {
		t.Errorf("Expected value axis max 70000, got %v", src.YAxis.Max)
	}

	if len(src.Series) != 2 {
		t.Fatalf("Expected 2 series, got %d", len(src.Series))
	}
	if src.Series[0].NameRange != "Sheet1!$A$2" || src.Series[0].ValueRange != "Sheet1!$B$2:$G$2" {
		t.Errorf("Unexpected first series %+v", src.Series[0])
	}
	if src.Series[0].CategoryRange != "Sheet1!$B$1:$G$1" {
		t.Errorf("Unexpected category range %q", src.Series[0].CategoryRange)
	}
	if src.Series[1].Name != "Inline" || src.Series[1].ValueRange != "'Data Sheet'!$B$3:$G$3" {
		t.Errorf("Unexpected second series %+v", src.Series[1])
	}
}

func TestParseChartXMLLine(t *testing.T) {
	data := `<c:chartSpace xmlns:c="http://schemas.openxmlformats.org/drawingml/2006/chart"><c:chart><c:plotArea>
<c:lineChart><c:ser><c:val><c:numRef><c:f>S!$A$1:$A$3</c:f></c:numRef></c:val></c:ser></c:lineChart>
<c:catAx><c:scaling><c:orientation val="minMax"/></c:scaling></c:catAx>
<c:valAx><c:scaling><c:orientation val="maxMin"/></c:scaling></c:valAx>
</c:plotArea></c:chart></c:chartSpace>`

	src, err := parseChartXML([]byte(data))
	if err != nil {
		t.Fatalf("parseChartXML failed: %v", err)
	}
	if src.ChartType != "Line" || src.Polar {
		t.Errorf("Expected cartesian Line chart, got %q polar=%v", src.ChartType, src.Polar)
	}
	if !src.YAxis.Reversed || src.YAxis.Min != nil {
		t.Errorf("Unexpected value axis %+v", src.YAxis)
	}
}

func TestParseChartXMLScatter(t *testing.T) {
	data := `<c:chartSpace xmlns:c="http://schemas.openxmlformats.org/drawingml/2006/chart"><c:chart><c:plotArea>
<c:scatterChart><c:ser>
<c:xVal><c:numRef><c:f>S!$A$2:$A$5</c:f></c:numRef></c:xVal>
<c:yVal><c:numRef><c:f>S!$B$2:$B$5</c:f></c:numRef></c:yVal>
</c:ser></c:scatterChart>
<c:valAx><c:scaling><c:orientation val="minMax"/><c:min val="2"/></c:scaling></c:valAx>
<c:valAx><c:scaling><c:orientation val="minMax"/><c:max val="50"/></c:scaling></c:valAx>
</c:plotArea></c:chart></c:chartSpace>`

	src, err := parseChartXML([]byte(data))
	if err != nil {
		t.Fatalf("parseChartXML failed: %v", err)
	}
	if src.ChartType != "XYScatter" {
		t.Errorf("Expected XYScatter chart, got %q", src.ChartType)
	}
	if src.XAxis.Type != models.AxisLinear || src.XAxis.Min == nil || *src.XAxis.Min != 2 {
		t.Errorf("Unexpected x axis %+v", src.XAxis)
	}
	if src.YAxis.Max == nil || *src.YAxis.Max != 50 {
		t.Errorf("Unexpected y axis %+v", src.YAxis)
	}
	if len(src.Series) != 1 {
		t.Fatalf("Expected 1 series, got %d", len(src.Series))
	}
	if src.Series[0].XRange != "S!$A$2:$A$5" || src.Series[0].ValueRange != "S!$B$2:$B$5" {
		t.Errorf("Unexpected scatter series %+v", src.Series[0])
	}
}

func TestParseChartXMLInvalid(t *testing.T) {
	if _, err := parseChartXML([]byte("<c:chartSpace><unclosed>")); err == nil {
		t.Errorf("Expected error for malformed chart part")
	}
}

func TestParseDrawingForCharts(t *testing.T) {
	data := `<xdr:wsDr xmlns:xdr="http://schemas.openxmlformats.org/drawingml/2006/spreadsheetDrawing" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:c="http://schemas.openxmlformats.org/drawingml/2006/chart">
<xdr:twoCellAnchor>
<xdr:from><xdr:col>1</xdr:col><xdr:colOff>0</xdr:colOff><xdr:row>2</xdr:row><xdr:rowOff>0</xdr:rowOff></xdr:from>
<xdr:to><xdr:col>9</xdr:col><xdr:colOff>95250</xdr:colOff><xdr:row>17</xdr:row><xdr:rowOff>0</xdr:rowOff></xdr:to>
<xdr:graphicFrame macro="">
<xdr:nvGraphicFramePr><xdr:cNvPr id="2" name="Chart 1"/><xdr:cNvGraphicFramePr/></xdr:nvGraphicFramePr>
<xdr:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/></xdr:xfrm>
<a:graphic><a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/chart"><c:chart r:id="rId1"/></a:graphicData></a:graphic>
</xdr:graphicFrame><xdr:clientData/>
</xdr:twoCellAnchor>
<xdr:oneCellAnchor>
<xdr:from><xdr:col>0</xdr:col><xdr:colOff>0</xdr:colOff><xdr:row>0</xdr:row><xdr:rowOff>0</xdr:rowOff></xdr:from>
<xdr:ext cx="4572000" cy="2743200"/>
<xdr:sp><xdr:nvSpPr><xdr:cNvPr id="3" name="Box"/></xdr:nvSpPr></xdr:sp><xdr:clientData/>
</xdr:oneCellAnchor>
<xdr:absoluteAnchor>
<xdr:pos x="0" y="0"/><xdr:ext cx="4572000" cy="2743200"/>
<xdr:graphicFrame macro="">
<xdr:nvGraphicFramePr><xdr:cNvPr id="4" name="Chart 2"/></xdr:nvGraphicFramePr>
<xdr:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/></xdr:xfrm>
<a:graphic><a:graphicData><c:chart r:id="rId2"/></a:graphicData></a:graphic>
</xdr:graphicFrame><xdr:clientData/>
</xdr:absoluteAnchor>
</xdr:wsDr>`

	frames := parseDrawingForCharts([]byte(data))
	if len(frames) != 2 {
		t.Fatalf("Expected 2 chart frames, got %d", len(frames))
	}

	first := frames[0]
	if first.name != "Chart 1" || first.rID != "rId1" {
		t.Errorf("Unexpected first frame %+v", first)
	}
	// 8 columns of 64px plus a 10px offset, 15 rows of 20px
	if first.width != 522 || first.height != 300 {
		t.Errorf("Expected 522x300, got %dx%d", first.width, first.height)
	}

	second := frames[1]
	if second.name != "Chart 2" || second.rID != "rId2" {
		t.Errorf("Unexpected second frame %+v", second)
	}
	if second.width != 480 || second.height != 288 {
		t.Errorf("Expected 480x288, got %dx%d", second.width, second.height)
	}
}

func TestExtractChartsFromWorkbook(t *testing.T) {
	path := writeBudgetWorkbook(t, true)

	charts, err := ExtractCharts(path, nil)
	if err != nil {
		t.Fatalf("ExtractCharts failed: %v", err)
	}
	if len(charts) != 1 {
		t.Fatalf("Expected 1 chart, got %d", len(charts))
	}

	src := charts[0]
	if src.Sheet != "Sheet1" {
		t.Errorf("Expected sheet Sheet1, got %q", src.Sheet)
	}
	if src.ChartType != "Radar" || !src.Polar {
		t.Errorf("Expected polar Radar chart, got %q polar=%v", src.ChartType, src.Polar)
	}
	if !src.YAxis.Reversed {
		t.Errorf("Expected reversed value axis")
	}
	if src.YAxis.Min == nil || *src.YAxis.Min != -10 {
		t.Errorf("Expected value axis min -10, got %v", src.YAxis.Min)
	}
	if len(src.Series) != 2 {
		t.Fatalf("Expected 2 series, got %d", len(src.Series))
	}
	if src.Series[1].ValueRange != "Sheet1!$B$3:$G$3" {
		t.Errorf("Unexpected value range %q", src.Series[1].ValueRange)
	}
	if src.W <= 0 || src.H <= 0 {
		t.Errorf("Expected a positive frame size, got %dx%d", src.W, src.H)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f.Close()

	spec, err := ToChartSpec(f, src)
	if err != nil {
		t.Fatalf("ToChartSpec failed: %v", err)
	}
	if len(spec.Series) != 2 {
		t.Fatalf("Expected 2 series, got %d", len(spec.Series))
	}
	if spec.Series[0].Name != "Allocated Budget" {
		t.Errorf("Expected series name 'Allocated Budget', got %q", spec.Series[0].Name)
	}
	if len(spec.Series[0].Data) != 6 || spec.Series[0].Data[2] == nil || *spec.Series[0].Data[2] != 60000 {
		t.Errorf("Unexpected series data %v", spec.Series[0].Data)
	}
}

func TestExtractChartsWithoutCharts(t *testing.T) {
	charts, err := ExtractCharts(writeBudgetWorkbook(t, false), nil)
	if err != nil {
		t.Fatalf("ExtractCharts failed: %v", err)
	}
	if len(charts) != 0 {
		t.Errorf("Expected no charts, got %d", len(charts))
	}
}

func TestResolveRelativePath(t *testing.T) {
	tests := []struct {
		target   string
		baseDir  string
		expected string
	}{
		{"../charts/chart1.xml", "xl/drawings", "xl/charts/chart1.xml"},
		{"../drawings/drawing1.xml", "xl/worksheets", "xl/drawings/drawing1.xml"},
		{"/xl/worksheets/sheet1.xml", "xl", "xl/worksheets/sheet1.xml"},
		{"worksheets/sheet1.xml", "xl", "xl/worksheets/sheet1.xml"},
	}

	for _, tt := range tests {
		result := resolveRelativePath(tt.target, tt.baseDir)
		if result != tt.expected {
			t.Errorf("resolveRelativePath(%q, %q) = %q, expected %q",
				tt.target, tt.baseDir, result, tt.expected)
		}
	}
}

func TestRelsPathFor(t *testing.T) {
	tests := []struct {
		part     string
		expected string
	}{
		{"xl/workbook.xml", "xl/_rels/workbook.xml.rels"},
		{"xl/worksheets/sheet1.xml", "xl/worksheets/_rels/sheet1.xml.rels"},
		{"xl/drawings/drawing1.xml", "xl/drawings/_rels/drawing1.xml.rels"},
	}

	for _, tt := range tests {
		result := relsPathFor(tt.part)
		if result != tt.expected {
			t.Errorf("relsPathFor(%q) = %q, expected %q", tt.part, result, tt.expected)
		}
	}
}

const relTypePrefix = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/"

func relsXML(rels ...[3]string) string {
	var b strings.Builder
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	for _, r := range rels {
		fmt.Fprintf(&b, `<Relationship Id="%s" Type="%s%s" Target="%s"/>`, r[0], relTypePrefix, r[1], r[2])
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

func chartAnchorXML(name, rID string) string {
	return `<xdr:absoluteAnchor><xdr:pos x="0" y="0"/><xdr:ext cx="4572000" cy="2743200"/>
<xdr:graphicFrame macro=""><xdr:nvGraphicFramePr><xdr:cNvPr id="2" name="` + name + `"/></xdr:nvGraphicFramePr>
<a:graphic><a:graphicData><c:chart r:id="` + rID + `"/></a:graphicData></a:graphic>
</xdr:graphicFrame><xdr:clientData/></xdr:absoluteAnchor>`
}

// zipPackage builds an in-memory workbook package from part names and contents.
func zipPackage(t *testing.T, parts map[string]string) *zip.Reader {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range parts {
		fw, err := w.Create(name)
		if err != nil {
			t.Fatalf("Failed to create part %s: %v", name, err)
		}
		if _, err := fw.Write([]byte(content)); err != nil {
			t.Fatalf("Failed to write part %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close package: %v", err)
	}

	r, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("Failed to read package: %v", err)
	}
	return r
}

func TestExtractChartsLogsUnreadableChart(t *testing.T) {
	parts := map[string]string{}
	parts["xl/workbook.xml"] = `<workbook xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"><sheets><sheet name="Sheet1" sheetId="1" r:id="rId1"/></sheets></workbook>`
	parts["xl/_rels/workbook.xml.rels"] = relsXML([3]string{"rId1", "worksheet", "worksheets/sheet1.xml"})
	parts["xl/worksheets/sheet1.xml"] = `<worksheet/>`
	parts["xl/worksheets/_rels/sheet1.xml.rels"] = relsXML([3]string{"rId1", "drawing", "../drawings/drawing1.xml"})
	parts["xl/drawings/drawing1.xml"] = `<xdr:wsDr xmlns:xdr="http://schemas.openxmlformats.org/drawingml/2006/spreadsheetDrawing" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:c="http://schemas.openxmlformats.org/drawingml/2006/chart">` +
		chartAnchorXML("Broken", "rId1") + chartAnchorXML("Budget", "rId2") + `</xdr:wsDr>`
	parts["xl/drawings/_rels/drawing1.xml.rels"] = relsXML(
		[3]string{"rId1", "chart", "../charts/chart1.xml"},
		[3]string{"rId2", "chart", "../charts/chart2.xml"},
	)
	parts["xl/charts/chart1.xml"] = "<c:chartSpace><unclosed>"
	parts["xl/charts/chart2.xml"] = radarChartXML
	r := zipPackage(t, parts)

	core, logs := observer.New(zap.WarnLevel)
	charts, err := extractCharts(r, zap.New(core))
	if err != nil {
		t.Fatalf("extractCharts failed: %v", err)
	}
	if len(charts) != 1 || charts[0].Name != "Budget" {
		t.Fatalf("Expected only the Budget chart, got %+v", charts)
	}

	entries := logs.FilterMessage("skipping unreadable chart part").All()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 warning, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["part"] != "xl/charts/chart1.xml" || fields["chart"] != "Broken" || fields["sheet"] != "Sheet1" {
		t.Errorf("Unexpected warning fields %v", fields)
	}
}
