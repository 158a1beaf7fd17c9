//go:build js && wasm

// Command web is the browser client. It is compiled to WebAssembly and drives the
// page served at "/".
package main

import (
	"context"
	"fmt"
	"syscall/js"
	_ "time/tzdata" // browsers ship no zoneinfo

	"poster-events/internal/client"
	"poster-events/internal/model"
	"poster-events/pkg/icalendar"
	"poster-events/pkg/log"
)

var fieldLabels = map[string]string{
	model.FieldTitle:       "Title",
	model.FieldDate:        "Date (YYYY-MM-DD)",
	model.FieldTime:        "Time (HH:MM)",
	model.FieldLocation:    "Location",
	model.FieldDescription: "Description",
}

type app struct {
	doc     js.Value
	session *client.Session
	l       log.Logger

	// rendered length, the grid is rebuilt only when it changes
	renderedEvents int
}

func main() {
	logger := log.Init(log.ZapConfig{Level: "info", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole})

	ctx := context.Background()
	cfg := client.Config{
		BaseURL: js.Global().Get("location").Get("origin").String(),
		Logger:  logger,
	}
	if st, err := client.FetchSettings(ctx, nil, cfg.BaseURL); err != nil {
		logger.Warnf(ctx, "calendar settings unavailable, using defaults: %v", err)
	} else if err := st.Apply(&cfg); err != nil {
		logger.Warnf(ctx, "calendar settings rejected, using defaults: %v", err)
	}

	a := &app{
		doc:            js.Global().Get("document"),
		session:        client.New(cfg),
		l:              logger,
		renderedEvents: -1,
	}
	a.session.OnChange(a.render)
	a.bind()
	a.render(a.session.Snapshot())

	select {}
}

func (a *app) byID(id string) js.Value {
	return a.doc.Call("getElementById", id)
}

func (a *app) bind() {
	a.byID("file").Call("addEventListener", "change", js.FuncOf(func(this js.Value, args []js.Value) any {
		files := this.Get("files")
		if files.Length() == 0 {
			a.session.SelectFile("", nil)
			return nil
		}
		file := files.Index(0)
		seq := a.session.BeginFileRead(file.Get("name").String())

		var then, fail js.Func
		release := func() {
			then.Release()
			fail.Release()
		}
		then = js.FuncOf(func(_ js.Value, res []js.Value) any {
			defer release()
			buf := js.Global().Get("Uint8Array").New(res[0])
			data := make([]byte, buf.Get("length").Int())
			js.CopyBytesToGo(data, buf)
			a.session.FinishFileRead(seq, data)
			return nil
		})
		fail = js.FuncOf(func(_ js.Value, res []js.Value) any {
			defer release()
			a.l.Warnf(context.Background(), "read file: %v", res[0])
			a.session.FinishFileRead(seq, nil)
			return nil
		})
		file.Call("arrayBuffer").Call("then", then, fail)
		return nil
	}))

	a.byID("upload-form").Call("addEventListener", "submit", js.FuncOf(func(this js.Value, args []js.Value) any {
		args[0].Call("preventDefault")
		// Blocking HTTP must not run on the JS event loop goroutine.
		go func() {
			if err := a.session.Submit(context.Background()); err != nil {
				a.l.Warnf(context.Background(), "submit: %v", err)
			}
		}()
		return nil
	}))

	a.byID("export").Call("addEventListener", "click", js.FuncOf(func(this js.Value, args []js.Value) any {
		// The session keeps the failure as its error message and re-renders.
		data, err := a.session.Export()
		if err != nil {
			a.l.Warnf(context.Background(), "export: %v", err)
			return nil
		}
		a.download(icalendar.FileName, icalendar.ContentType, data)
		return nil
	}))
}

func (a *app) render(st client.State) {
	submit := a.byID("submit")
	submit.Set("disabled", st.Loading || st.ReadingFile)
	if st.Loading {
		submit.Set("textContent", "Processing...")
	} else {
		submit.Set("textContent", "Recognize")
	}

	a.showError(st.Error)

	results := a.byID("results")
	if st.Events == nil {
		results.Get("style").Set("display", "none")
		a.renderedEvents = -1
		return
	}
	results.Get("style").Set("display", "block")

	// Rebuilding on every keystroke would steal input focus.
	if len(st.Events) == a.renderedEvents {
		return
	}
	a.renderedEvents = len(st.Events)

	grid := a.byID("events")
	grid.Set("innerHTML", "")
	for i, ev := range st.Events {
		grid.Call("appendChild", a.eventCard(i, ev))
	}
}

func (a *app) eventCard(index int, ev model.Event) js.Value {
	card := a.doc.Call("createElement", "div")
	card.Set("className", "event")

	for _, field := range model.EventFields {
		value, _ := ev.Get(field)

		label := a.doc.Call("createElement", "label")
		label.Set("textContent", fieldLabels[field]+": ")

		tag := "input"
		if field == model.FieldDescription {
			tag = "textarea"
		}
		input := a.doc.Call("createElement", tag)
		input.Set("value", value)
		input.Set("name", fmt.Sprintf("%s-%d", field, index))

		f := field
		input.Call("addEventListener", "input", js.FuncOf(func(this js.Value, args []js.Value) any {
			if err := a.session.EditField(index, f, this.Get("value").String()); err != nil {
				a.l.Warnf(context.Background(), "edit: %v", err)
			}
			return nil
		}))

		label.Call("appendChild", input)
		card.Call("appendChild", label)
	}
	return card
}

func (a *app) showError(msg string) {
	el := a.byID("error")
	el.Set("textContent", msg)
	if msg == "" {
		el.Get("style").Set("display", "none")
	} else {
		el.Get("style").Set("display", "block")
	}
}

// download hands data to the browser as a file through a temporary object URL.
func (a *app) download(name, contentType string, data []byte) {
	arr := js.Global().Get("Uint8Array").New(len(data))
	js.CopyBytesToJS(arr, data)

	parts := js.Global().Get("Array").New(arr)
	opts := js.Global().Get("Object").New()
	opts.Set("type", contentType)
	blob := js.Global().Get("Blob").New(parts, opts)

	url := js.Global().Get("URL").Call("createObjectURL", blob)
	link := a.doc.Call("createElement", "a")
	link.Set("href", url)
	link.Call("setAttribute", "download", name)

	body := a.doc.Get("body")
	body.Call("appendChild", link)
	link.Call("click")
	body.Call("removeChild", link)
	js.Global().Get("URL").Call("revokeObjectURL", url)
}
