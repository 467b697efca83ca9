package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// FollowPanel lists the followable units with a button each, plus a stop button.
type FollowPanel struct {
	UI *ebitenui.UI

	OnFollow func(index int)
	OnStop   func()

	names       []string
	unitButtons []*widget.Button
	statusLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewFollowPanel(names []string, onFollow func(index int), onStop func()) (*FollowPanel, error) {
	fp := &FollowPanel{
		OnFollow: onFollow,
		OnStop:   onStop,
		names:    append([]string(nil), names...),
	}
	if err := fp.loadFonts(); err != nil {
		return nil, err
	}
	fp.buildUI()
	return fp, nil
}

func (fp *FollowPanel) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("ui: load font: %w", err)
	}

	fp.titleFace = &text.GoTextFace{Source: fontSource, Size: 14}
	fp.normalFace = &text.GoTextFace{Source: fontSource, Size: 12}
	fp.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
	return nil
}

func (fp *FollowPanel) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 45, 220})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("FOLLOW", &fp.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	panel.AddChild(titleLabel)

	for i, name := range fp.names {
		index := i
		btn := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 22)),
			widget.ButtonOpts.Image(fp.buttonImage()),
			widget.ButtonOpts.Text(fp.buttonLabel(i, name, false), &fp.normalFace, &widget.ButtonTextColor{
				Idle:    color.RGBA{255, 255, 255, 255},
				Hover:   color.RGBA{200, 220, 255, 255},
				Pressed: color.RGBA{150, 170, 200, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if fp.OnFollow != nil {
					fp.OnFollow(index)
				}
			}),
		)
		fp.unitButtons = append(fp.unitButtons, btn)
		panel.AddChild(btn)
	}

	stopBtn := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 22)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{100, 40, 40, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{140, 60, 60, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{80, 30, 30, 255}),
		}),
		widget.ButtonOpts.Text("Stop (0)", &fp.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if fp.OnStop != nil {
				fp.OnStop()
			}
		}),
	)
	panel.AddChild(stopBtn)

	fp.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &fp.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	panel.AddChild(fp.statusLabel)

	rootContainer.AddChild(panel)

	fp.UI = &ebitenui.UI{Container: rootContainer}
}

func (fp *FollowPanel) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func (fp *FollowPanel) buttonLabel(i int, name string, followed bool) string {
	marker := " "
	if followed {
		marker = ">"
	}
	if i < 9 {
		return fmt.Sprintf("%s %d %s", marker, i+1, name)
	}
	return fmt.Sprintf("%s   %s", marker, name)
}

// SetFollowed marks the button of the followed unit. A negative index clears the mark.
func (fp *FollowPanel) SetFollowed(index int) {
	for i, btn := range fp.unitButtons {
		if textWidget := btn.Text(); textWidget != nil {
			textWidget.Label = fp.buttonLabel(i, fp.names[i], i == index)
		}
	}
}

func (fp *FollowPanel) SetStatus(msg string) {
	if fp.statusLabel != nil {
		fp.statusLabel.Label = msg
	}
}

func (fp *FollowPanel) Update() {
	fp.UI.Update()
}
