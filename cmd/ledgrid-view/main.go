// Command ledgrid-view previews an image file on a simulated LED matrix in
// the terminal. The image is quantized to an indexed bitmap and palette,
// placed in the scene, and presented with tcell until a key is pressed —
// a quick way to check how artwork survives the trip to matrix hardware.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/ledgrid"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()

	app.Name = "ledgrid-view"
	app.Usage = "preview an image on a simulated LED matrix"
	app.ArgsUsage = "FILE"

	app.Flags = []cli.Flag{
		&cli.IntFlag{
			Name:  "width",
			Value: 64,
			Usage: "matrix width in pixels",
		},
		&cli.IntFlag{
			Name:  "height",
			Value: 32,
			Usage: "matrix height in pixels",
		},
		&cli.IntFlag{
			Name:  "colors",
			Value: 256,
			Usage: "maximum palette entries after quantization",
		},
		&cli.IntFlag{
			Name:  "scale",
			Value: 1,
			Usage: "integer upscale applied to the sprite",
		},
		&cli.IntFlag{
			Name:  "rotation",
			Value: 0,
			Usage: "display rotation in degrees (0, 90, 180, 270)",
		},
		&cli.Float64Flag{
			Name:  "brightness",
			Value: 1.0,
			Usage: "display brightness from 0 to 1",
		},
	}

	app.Action = view

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func view(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowAppHelpAndExit(c, 1)
	}

	bm, pal, err := ledgrid.LoadBitmap(c.Args().First())
	if err != nil {
		return cli.Exit(err, 1)
	}

	scale := c.Int("scale")
	if scale < 1 {
		return cli.Exit(fmt.Errorf("scale %d must be at least 1", scale), 1)
	}

	root := ledgrid.NewGroup()
	root.Scale = scale
	root.Append(ledgrid.NewTileSprite(bm, pal))

	rot := ledgrid.Rotation(c.Int("rotation"))
	switch rot {
	case ledgrid.Rotate0, ledgrid.Rotate90, ledgrid.Rotate180, ledgrid.Rotate270:
	default:
		return cli.Exit(fmt.Errorf("rotation %d must be 0, 90, 180 or 270", rot), 1)
	}

	display := ledgrid.NewDisplay(c.Int("width"), c.Int("height"))
	display.SetRotation(rot)
	display.SetBrightness(c.Float64("brightness"))
	display.SetRoot(root)

	return present(display.Matrix)
}

// present paints the matrix once and waits for a key.
func present(m *ledgrid.PixelBuffer) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return cli.Exit(err, 1)
	}
	if err := screen.Init(); err != nil {
		return cli.Exit(err, 1)
	}
	defer screen.Fini()

	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			c := m.PixelAt(x, y)
			style := tcell.StyleDefault.Background(
				tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			screen.SetContent(x*2, y, ' ', nil, style)
			screen.SetContent(x*2+1, y, ' ', nil, style)
		}
	}
	m.ClearDirty()
	screen.Show()

	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventKey:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
