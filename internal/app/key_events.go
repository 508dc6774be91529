package app

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/gamzabox/humble-line/internal/logging"
)

const keyEventIdle = 5 * time.Second

// eventScreen is the part of tcell.Screen the key viewer needs.
type eventScreen interface {
	PollEvent() tcell.Event
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
	Clear()
	Show()
}

// RunKeyEvents opens the terminal and prints every key event it sees until
// Esc is pressed. It is a diagnostic for terminals that swallow key chords.
func RunKeyEvents(logger *logging.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	return watchKeyEvents(screen, keyEventIdle, logger)
}

func watchKeyEvents(screen eventScreen, idle time.Duration, logger *logging.Logger) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	view := &eventView{screen: screen}
	view.add("Ready to print key events (Esc quits):")

	timer := time.NewTimer(idle)
	defer timer.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(idle)

			switch ev := ev.(type) {
			case *tcell.EventKey:
				line := "Event::Key " + ev.Name()
				logger.Debugf("key event: %s", ev.Name())
				view.add(line)
				if ev.Key() == tcell.KeyEscape {
					return nil
				}
			case *tcell.EventResize:
				w, h := ev.Size()
				view.add(fmt.Sprintf("Event::Resize %dx%d", w, h))
			}
		case <-timer.C:
			view.add("Waiting for you to type...")
			timer.Reset(idle)
		}
	}
}

// eventView is a scrolling list of lines drawn top to bottom.
type eventView struct {
	screen eventScreen
	lines  []string
}

func (v *eventView) add(line string) {
	v.lines = append(v.lines, line)
	_, height := v.screen.Size()
	if height > 0 && len(v.lines) > height {
		v.lines = v.lines[len(v.lines)-height:]
	}
	v.draw()
}

func (v *eventView) draw() {
	v.screen.Clear()
	for y, line := range v.lines {
		x := 0
		for _, r := range line {
			v.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
			x += runewidth.RuneWidth(r)
		}
	}
	v.screen.Show()
}
