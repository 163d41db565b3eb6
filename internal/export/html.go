package export

import (
	"bytes"
	"encoding/base64"
	"html/template"
	"image"

	"github.com/disintegration/imaging"

	"github.com/youruser/cardforge/internal/cards"
	"github.com/youruser/cardforge/internal/style"
)

var flipCard = template.Must(template.New("card").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Name}}</title>
<style>
body { margin: 0; min-height: 100vh; display: flex; align-items: center; justify-content: center; background: #f0f0f0; font-family: sans-serif; }
.card { width: 525px; height: 300px; perspective: 1000px; }
.inner { position: relative; width: 100%; height: 100%; transition: transform 0.6s; transform-style: preserve-3d; }
.card:hover .inner { transform: rotateY(180deg); }
.face { position: absolute; inset: 0; backface-visibility: hidden; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 16px rgba(0,0,0,0.25); }
.front img { width: 100%; height: 100%; display: block; }
.back { transform: rotateY(180deg); background: linear-gradient(135deg, {{.Primary}}, {{.Secondary}}); color: {{.Light}}; display: flex; flex-direction: column; justify-content: center; padding: 0 40px; box-sizing: border-box; }
.back h1 { margin: 0 0 8px; font-size: 28px; }
.back p { margin: 2px 0; font-size: 16px; }
</style>
</head>
<body>
<div class="card">
<div class="inner">
<div class="face front"><img src="{{.Front}}" alt="{{.Name}}"></div>
<div class="face back">
<h1>{{.Name}}</h1>
{{- with .JobTitle}}
<p>{{.}}</p>
{{- end}}
{{- with .Company}}
<p>{{.}}</p>
{{- end}}
</div>
</div>
</div>
</body>
</html>
`))

type flipCardData struct {
	Name, JobTitle, Company   string
	Front                     template.URL
	Primary, Secondary, Light template.CSS
}

func encodeHTML(img image.Image, c cards.Contact, p style.Palette) ([]byte, error) {
	var raster bytes.Buffer
	if err := imaging.Encode(&raster, img, imaging.PNG); err != nil {
		return nil, err
	}
	data := flipCardData{
		Name:      c.Name,
		JobTitle:  c.JobTitle,
		Company:   c.Company,
		Front:     template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(raster.Bytes())),
		Primary:   template.CSS(p.Hex(style.Primary)),
		Secondary: template.CSS(p.Hex(style.Secondary)),
		Light:     template.CSS(p.Hex(style.Light)),
	}
	var out bytes.Buffer
	if err := flipCard.Execute(&out, data); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
