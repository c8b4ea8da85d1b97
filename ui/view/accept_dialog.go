package view

import (
	"image"

	"github.com/luphord/blitzcrop-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ShowAcceptDialog opens a modal-style toplevel presenting the extracted crop
// and invokes exactly one of the callbacks when the user decides.
func ShowAcceptDialog(crop image.Image, maxW, maxH int, onAccept, onReject func()) {
	win := App.Toplevel(Borderwidth(2))
	win.WmTitle("Accept crop?")
	WmAttributes(win.Window, "-topmost", 1)

	decided := false
	decide := func(cb func()) func() {
		return func() {
			if decided {
				return
			}
			decided = true
			Destroy(win)
			if cb != nil {
				cb()
			}
		}
	}
	accept := decide(onAccept)
	reject := decide(onReject)

	preview := images.FitPreview(crop, maxW, maxH)
	photo := NewPhoto(Data(images.EncodePNG(preview)))
	previewLbl := win.Label(Image(photo), Borderwidth(1), Relief("sunken"))
	Grid(previewLbl, Row(0), Column(0), Columnspan(2), Padx("1m"), Pady("1m"))

	acceptBtn := win.Button(Txt("Accept [Enter]"), Command(accept))
	Grid(acceptBtn, Row(1), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	rejectBtn := win.Button(Txt("Reject [Esc]"), Command(reject))
	Grid(rejectBtn, Row(1), Column(1), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	Bind(win, "<Return>", Command(accept))
	Bind(win, "<Escape>", Command(reject))
}
