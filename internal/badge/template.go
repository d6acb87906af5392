package badge

// Static badge artwork. The badge is a 180x250 rounded card with the HomeKit
// house emblem in the top left corner, the pairing code to its right, and a
// white square below holding the QR pattern. Everything here is fixed; the
// two substitution points are the code text (codeText) and the QR region
// (qrRegion* plus the emitted path).

const (
	svgHeader = `<?xml version="1.0" encoding="utf-8"?>`

	svgOpen = `<svg version="1.1" id="homekit-badge" xmlns="http://www.w3.org/2000/svg" ` +
		`xmlns:xlink="http://www.w3.org/1999/xlink" x="0px" y="0px" viewBox="0 0 180 250" ` +
		`style="enable-background:new 0 0 180 250;" xml:space="preserve">`

	svgStyle = `<style type="text/css">.st0{fill:#FFFFFF;stroke:#221E1F;stroke-width:5;}` +
		`.st1{fill:#221E1F;stroke:#221E1F}.st2{fill:#FFFFFF;}</style>`

	cardOutline = `<g><rect x="2.5" y="2.5" width="180" height="245" rx="20" ry="20" class="st0" />`

	houseEmblem = `<g><path id="_Compound_Path_1_1_" class="st1" ` +
		`d="M69.5,31l-6.6-5.3v-9.4c0-0.7-0.3-0.9-0.8-0.9h-4.2c-0.6,0-0.9,0.1-0.9,0.9v4.8l0,0L41,8.5c-0.4-0.4-` +
		`0.9-0.6-1.4-0.6c-0.5,0-1,0.2-1.4,0.6L9.7,31c-1,0.8-0.7,1.9,0.4,1.9h5.3v28.6c0,1.9,0.7,2.6,2.5,2.6h43.` +
		`4c1.8,0,2.5-0.7,2.5-2.6V32.9h5.3C70.2,32.9,70.5,31.8,69.5,31z ` +
		`M60.3,58.1c0.2,1.1-0.6,2.1-1.6,2.2c-0.1,0-0.3,0-0.4,0H20.9c-1.1,0.1-2-0.7-2.1-1.8c0-0.1,0-0.3,0-0.` +
		`4V30.4c0-1.3,0.5-2.5,1.5-3.3l18-14c0.3-0.3,0.8-0.5,1.3-0.5c0.5,0,0.9,0.2,1.3,0.5l18,14c1,0.8,1.5,2,1.` +
		`5,3.3V58.1z"/>` +
		`<path id="_Compound_Path_2_1_" class="st1" ` +
		`d="M53.1,30.4l-12.6-10c-0.3-0.2-0.6-0.4-1-0.4c-0.4,0-0.7,0.1-1,0.4L26,30.4c-0.7,0.5-1.1,1.4-1,2.3v19.` +
		`9c-0.1,0.8,0.5,1.5,1.3,1.6c0.1,0,0.2,0,0.3,0h26c0.8,0.1,1.5-0.5,1.6-1.3c0-0.1,0-0.2,0-0.3V32.8C54.3,` +
		`31.9,53.9,31,53.1,30.4z ` +
		`M50.6,49.2c0.1,0.6-0.3,1.2-1,1.3c-0.1,0-0.2,0-0.3,0H29.8c-0.6,0.1-1.2-0.4-1.3-1.1c0-0.1,0-0.2,0-0.` +
		`3V34.1c-0.1-0.7,0.2-1.4,0.7-1.8l9.5-7.5c0.2-0.2,0.5-0.3,0.8-0.3c0.3,0,0.6,0.1,0.8,0.3c0.3,0.2,9,7.1,9.` +
		`4,7.5c0.6,0.4,0.8,1.1,0.7,1.8V49.2z"/>` +
		`<path id="_Compound_Path_3_1_" class="st1" ` +
		`d="M40.1,31.3c-0.2-0.1-0.3-0.2-0.5-0.2c-0.2,0-0.4,0.1-0.5,0.2c-0.2,0.1-4.8,3.6-5,3.8c-0.4,0.3-0.6,0.` +
		`8-0.6,1.2v8.5c0,0.7,0.4,0.8,0.8,0.8h10.5c0.5,0,0.8-0.2,0.8-0.8v-8.5c0-0.5-0.2-0.9-0.6-1.2C44.9,34.9,` +
		`40.3,31.4,40.1,31.3z ` +
		`M42.1,41.7c0,0.3-0.1,0.4-0.3,0.4h-4.3c-0.2,0-0.3-0.1-0.3-0.4v-4c0-0.2,0.1-0.4,0.2-0.5l2-1.6c0.1-0.1,0.` +
		`1-0.1,0.2-0.1c0.1,0,0.2,0,0.2,0.1l2,1.6c0.2,0.1,0.2,0.3,0.2,0.5L42.1,41.7z"/></g>`

	// codeText takes the two 4-digit display groups.
	codeText = `<text x="75.5" y="29.5" font-family="SF Mono, Menlo, monospace" font-weight="bold" ` +
		`letter-spacing="8" font-size="28" class="st1"><tspan x="75.5" y="29.5">%s</tspan><tspan ` +
		`x="75.5" y="52">%s</tspan></text>`

	qrBackingRect = `<rect x="10" y="74" class="st2" width="165" height="165"/>`

	svgClose = `</g></svg>`
)

// QR region reserved by qrBackingRect.
const (
	qrRegionX     = 10.0
	qrRegionY     = 74.0
	qrRegionWidth = 165.0
)
