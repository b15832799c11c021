package lexicon

import "strings"

// topic pairs a tag with its Czech category label and the keywords that
// signal it.
type topic struct {
	tag      string
	label    string
	keywords []string
}

// Topics are checked in listed order; the first keyword hit wins.
var topics = []topic{
	{tag: "sketchup", label: "SketchUp - 3D modelování", keywords: []string{"sketchup", "sketch up"}},
	{tag: "d5-render", label: "D5 Render - Vizuální renderování", keywords: []string{"d5 render", "d5render"}},
	{tag: "archicad", label: "ArchiCAD - Architektonický návrh", keywords: []string{"archicad", "archi cad"}},
	{tag: "revit", label: "Revit - BIM a architektura", keywords: []string{"revit"}},
	{tag: "rhino", label: "Rhino - 3D modelování a design", keywords: []string{"rhino", "rhinoceros"}},
	{tag: "3dsmax", label: "3ds Max - 3D animace a rendering", keywords: []string{"3ds max", "3dsmax"}},
	{tag: "blender", label: "Blender - 3D tvorba a animace", keywords: []string{"blender"}},
	{tag: "lumion", label: "Lumion - Architektonická vizualizace", keywords: []string{"lumion"}},
	{tag: "twinmotion", label: "Twinmotion - Vizualizace v reálném čase", keywords: []string{"twinmotion", "twin motion"}},
	{tag: "vray", label: "V-Ray - Fotorealistický rendering", keywords: []string{"v-ray", "vray"}},
	{tag: "corona", label: "Corona Renderer - Realistický rendering", keywords: []string{"corona render", "corona"}},
	{tag: "cinema4d", label: "Cinema 4D - 3D animace a design", keywords: []string{"cinema 4d", "cinema4d", "c4d"}},
}

// DefaultTopicLabel is used when no software keyword is found.
const DefaultTopicLabel = "Softwarové nástroje - Návody a tipy"

// DetectTopic scans the article title and body text for known software
// keywords and returns the matching tag and Czech category label.
// The title is checked before the body. An empty tag with the default
// label means nothing matched.
func DetectTopic(title, body string) (tag, label string) {
	title = strings.ToLower(title)
	body = strings.ToLower(body)
	for _, t := range topics {
		for _, kw := range t.keywords {
			if strings.Contains(title, kw) || strings.Contains(body, kw) {
				return t.tag, t.label
			}
		}
	}
	return "", DefaultTopicLabel
}
