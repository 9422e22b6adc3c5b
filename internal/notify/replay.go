package notify

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/mctsnake/engine/internal/board"
)

const (
	canvasWidth  = 64
	canvasHeight = 32
)

// frameDeath mirrors the replay event's per-snake death record.
type frameDeath struct {
	Cause        string `json:"Cause"`
	Turn         int    `json:"Turn"`
	EliminatedBy string `json:"EliminatedBy"`
}

type frameSnake struct {
	ID     string        `json:"ID"`
	Name   string        `json:"Name"`
	Body   []board.Point `json:"Body"`
	Health int           `json:"Health"`
	Color  string        `json:"Color"`
	Death  *frameDeath   `json:"Death"`
}

type frameEvent struct {
	Type string `json:"Type"`
	Data struct {
		ID     string        `json:"ID"`
		Turn   int           `json:"Turn"`
		Snakes []frameSnake  `json:"Snakes"`
		Food   []board.Point `json:"Food"`
		Width  int           `json:"Width"`
		Height int           `json:"Height"`
	} `json:"Data"`
}

// collectFrames connects to the battlesnake.com replay websocket for
// gameID and reads every broadcast frame until the game_end event,
// returning one board per frame plus whether youID survived to the end.
func collectFrames(ctx context.Context, wsURL, youID string) ([]board.Board, bool, error) {
	dialCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	conn, _, err := websocket.DefaultDialer.DialContext(dialCtx, wsURL, nil)
	if err != nil {
		return nil, false, fmt.Errorf("dial replay websocket: %w", err)
	}
	defer conn.Close()

	var boards []board.Board
	var width, height int
	var youWon bool
	var last frameEvent

	for {
		_, message, err := conn.ReadMessage()
		if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
			break
		}
		if err != nil {
			break
		}

		var ev frameEvent
		if err := json.Unmarshal(message, &ev); err != nil {
			continue
		}

		if ev.Type == "game_end" {
			width, height = ev.Data.Width, ev.Data.Height
			break
		}
		last = ev

		b := board.Board{Food: ev.Data.Food}
		for _, fs := range last.Data.Snakes {
			head := board.Point{}
			if len(fs.Body) > 0 {
				head = fs.Body[0]
			}
			b.Snakes = append(b.Snakes, board.Snake{
				ID: fs.ID, Name: fs.Name, Health: fs.Health, Body: fs.Body, Head: head,
				Customizations: board.Customizations{Color: fs.Color},
			})
		}
		boards = append(boards, b)
	}

	for _, s := range last.Data.Snakes {
		if s.ID == youID && s.Death == nil {
			youWon = true
			break
		}
	}

	for i := range boards {
		boards[i].Width, boards[i].Height = width, height
	}

	return boards, youWon, nil
}

func snakeColor(name string) color.RGBA {
	h := sha1.Sum([]byte(name))
	return color.RGBA{h[0], h[1], h[2], 255}
}

func lighten(c color.RGBA) color.RGBA {
	lift := func(v uint8) uint8 {
		n := int(v) + 30
		if n > 255 {
			n = 255
		}
		return uint8(n)
	}
	return color.RGBA{lift(c.R), lift(c.G), lift(c.B), c.A}
}

func hexToRGBA(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", hex)
	}
	r, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return color.RGBA{}, err
	}
	g, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return color.RGBA{}, err
	}
	b, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return color.RGBA{}, err
	}
	return color.RGBA{uint8(r), uint8(g), uint8(b), 255}, nil
}

func drawCell(img *image.RGBA, x, y int, c color.RGBA) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if y+j < canvasHeight {
				img.Set(x+i, y+j, c)
			}
		}
	}
}

func drawLabel(img *image.RGBA, x, y int, label string, c color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(label)
}

func renderBoardFrame(b board.Board) (*image.RGBA, []color.Color) {
	palette := []color.Color{
		color.RGBA{0, 0, 0, 255},
		color.RGBA{255, 255, 255, 255},
		color.RGBA{0, 255, 0, 255},
		color.RGBA{100, 100, 100, 255},
	}

	img := image.NewRGBA(image.Rect(0, 0, canvasWidth, canvasHeight))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{0, 0, 0, 255}}, image.Point{}, draw.Src)

	offsetX := canvasWidth - b.Width*3
	yOffset := 10
	for _, s := range b.Snakes {
		bodyColor, err := hexToRGBA(s.Customizations.Color)
		if err != nil {
			bodyColor = snakeColor(s.Name)
		}
		headColor := lighten(bodyColor)
		palette = append(palette, bodyColor, headColor)

		for i, seg := range s.Body {
			flippedY := b.Height - 1 - seg.Y
			if i == 0 {
				drawCell(img, offsetX+seg.X*3, flippedY*3, headColor)
			} else {
				drawCell(img, offsetX+seg.X*3, flippedY*3, bodyColor)
			}
		}
		drawLabel(img, 2, yOffset, fmt.Sprintf("%2d", s.Length()), bodyColor)
		yOffset += 10
	}

	green := color.RGBA{0, 255, 0, 255}
	for _, f := range b.Food {
		flippedY := b.Height - 1 - f.Y
		drawCell(img, offsetX+f.X*3, flippedY*3, green)
	}

	return img, palette
}

// renderGIF stitches frames into a single animated GIF within a
// roughly 13-second run time, appending a win/loss color screen, and
// returns the encoded bytes.
func renderGIF(frames []board.Board, won bool) ([]byte, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("no frames to render")
	}

	const totalDurationMillis = 13000
	const maxDelayCentis = 20
	delay := totalDurationMillis / len(frames) / 10
	if delay > maxDelayCentis {
		delay = maxDelayCentis
	}
	if delay < 1 {
		delay = 1
	}

	var images []*image.Paletted
	var delays []int
	for i, f := range frames {
		img, palette := renderBoardFrame(f)
		paletted := image.NewPaletted(img.Bounds(), palette)
		draw.FloydSteinberg.Draw(paletted, img.Bounds(), img, image.Point{})
		images = append(images, paletted)
		if i == len(frames)-1 {
			delays = append(delays, 200)
		} else {
			delays = append(delays, delay)
		}
	}

	outcomeColor := color.RGBA{255, 0, 0, 255}
	if won {
		outcomeColor = color.RGBA{0, 255, 0, 255}
	}
	outcome := image.NewPaletted(image.Rect(0, 0, canvasWidth, canvasHeight), color.Palette{outcomeColor})
	images = append(images, outcome)
	delays = append(delays, 100)

	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, &gif.GIF{Image: images, Delay: delays}); err != nil {
		return nil, fmt.Errorf("encode gif: %w", err)
	}
	return buf.Bytes(), nil
}
