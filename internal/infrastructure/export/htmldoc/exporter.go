package htmldoc

import "fmt"

// Exporter wraps a document buffer into standalone HTML payloads for
// download. The print variant carries A4 print CSS; the word variant
// adds the Office namespaces that make Word open the file natively.
type Exporter struct{}

func New() *Exporter {
	return &Exporter{}
}

const printTemplate = `<html>
<head>
<title>%s</title>
<style>
body { font-family: 'Poppins', Arial, sans-serif; margin: 0; padding: 20px; }
@media print {
body { margin: 0; padding: 0; }
@page { size: A4; margin: 2cm; }
}
</style>
</head>
<body>
%s
</body>
</html>`

const wordTemplate = `<html xmlns:o='urn:schemas-microsoft-com:office:office' xmlns:w='urn:schemas-microsoft-com:office:word' xmlns='http://www.w3.org/TR/REC-html40'>
<head>
<meta charset='utf-8'>
<title>%s</title>
<style>
body { font-family: 'Poppins', Arial, sans-serif; margin: 0; padding: 20px; }
@page { size: A4; margin: 2cm; }
</style>
</head>
<body>
%s
</body>
</html>`

func (e *Exporter) Print(title, content string) []byte {
	return []byte(fmt.Sprintf(printTemplate, title, content))
}

func (e *Exporter) Word(title, content string) []byte {
	return []byte(fmt.Sprintf(wordTemplate, title, content))
}
