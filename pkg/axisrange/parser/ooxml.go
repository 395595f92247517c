package parser

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"path"
	"strings"
)

// readZipFile returns the content of a package part, or nil if it does not exist.
func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

// resolveRelativePath resolves a relationship target against the directory of its source part.
func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Clean(path.Join(baseDir, target))
}

// relsPathFor returns the relationships part that belongs to partPath.
func relsPathFor(partPath string) string {
	dir, file := path.Split(partPath)
	return dir + "_rels/" + file + ".rels"
}

type relationship struct {
	id      string
	relType string
	target  string
}

// parseRelationships parses a .rels part.
func parseRelationships(data []byte) []relationship {
	var result []relationship
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			var rel relationship
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "Id":
					rel.id = attr.Value
				case "Type":
					rel.relType = attr.Value
				case "Target":
					rel.target = attr.Value
				}
			}
			result = append(result, rel)
		}
	}

	return result
}

// parseWorkbookSheets maps relationship ids to sheet names.
func parseWorkbookSheets(data []byte) map[string]string {
	result := make(map[string]string)
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			var name, rID string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "name":
					name = attr.Value
				case "id":
					rID = attr.Value
				}
			}
			if name != "" && rID != "" {
				result[rID] = name
			}
		}
	}

	return result
}

// sheetParts maps sheet names to their worksheet part paths.
func sheetParts(r *zip.Reader) (map[string]string, error) {
	result := make(map[string]string)

	workbookXML, err := readZipFile(r, "xl/workbook.xml")
	if err != nil || workbookXML == nil {
		return result, err
	}
	sheets := parseWorkbookSheets(workbookXML)

	relsXML, err := readZipFile(r, relsPathFor("xl/workbook.xml"))
	if err != nil || relsXML == nil {
		return result, err
	}

	for _, rel := range parseRelationships(relsXML) {
		name, ok := sheets[rel.id]
		if !ok || !strings.Contains(strings.ToLower(rel.relType), "worksheet") {
			continue
		}
		result[name] = resolveRelativePath(rel.target, "xl")
	}
	return result, nil
}

// relatedPart returns the first part related to partPath whose type contains kind.
func relatedPart(r *zip.Reader, partPath, kind string) (string, error) {
	relsXML, err := readZipFile(r, relsPathFor(partPath))
	if err != nil || relsXML == nil {
		return "", err
	}
	for _, rel := range parseRelationships(relsXML) {
		if strings.HasSuffix(strings.ToLower(rel.relType), "/"+kind) {
			return resolveRelativePath(rel.target, path.Dir(partPath)), nil
		}
	}
	return "", nil
}

// relatedParts maps relationship ids to part paths for every relation of the given kind.
func relatedParts(r *zip.Reader, partPath, kind string) (map[string]string, error) {
	result := make(map[string]string)
	relsXML, err := readZipFile(r, relsPathFor(partPath))
	if err != nil || relsXML == nil {
		return result, err
	}
	for _, rel := range parseRelationships(relsXML) {
		if strings.HasSuffix(strings.ToLower(rel.relType), "/"+kind) {
			result[rel.id] = resolveRelativePath(rel.target, path.Dir(partPath))
		}
	}
	return result, nil
}
