// server is the live track preview: it serves a single page containing the
// tile-grid view of a generated map, then regenerates a fresh map on an
// interval and pushes the view deltas to the browser over a websocket. The
// preview exists for eyeballing generation parameters (track shapes, object
// spread) without round-tripping through the simulator.
package server

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"time"

	"trackgen/generator"
	"trackgen/server/tile_views"

	"github.com/gorilla/websocket"
	channerics "github.com/niceyeti/channerics/channels"
	"golang.org/x/sync/errgroup"
)

var upgrader = websocket.Upgrader{}

const (
	// Time allowed to write a message to the peer.
	writeWait = 1 * time.Second
	// Time to wait before force close on connection.
	closeGracePeriod = 10 * time.Second
	// Minimum spacing between pushed updates; arrivals in between are dropped.
	// Frames are idempotent full-view deltas, so dropping is harmless.
	pubResolution = 100 * time.Millisecond
)

// Server serves the preview page and its websocket. Like the prototype it
// is, it assumes a single viewer; multiple tabs would compete for the one
// update stream. Good enough for parameter tuning.
type Server struct {
	addr      string
	view      *tile_views.TileGrid
	lastFrame tile_views.Frame
}

// NewServer generates the initial map, starts the regeneration pump, and
// returns a server ready to Serve. When the config carries a nonzero seed,
// successive maps use seed, seed+1, seed+2... so a preview session is as
// reproducible as a single run; a zero seed gives a fresh map every tick.
func NewServer(
	ctx context.Context,
	addr string,
	cfg generator.GenerationConfig,
	regenEvery time.Duration,
) (*Server, error) {
	initial, err := generator.Generate(cfg)
	if err != nil {
		return nil, err
	}

	frames := make(chan tile_views.Frame)
	go regenerate(ctx, cfg, regenEvery, frames)

	return &Server{
		addr:      addr,
		view:      tile_views.NewTileGrid("tile_grid", ctx.Done(), frames),
		lastFrame: tile_views.Convert(initial),
	}, nil
}

// regenerate produces a new map per tick and forwards its frame. Generation
// failures here are logged and skipped, not fatal: the config was already
// validated by NewServer, so a failure at this point is a transient
// walk-guard trip at worst.
func regenerate(
	ctx context.Context,
	cfg generator.GenerationConfig,
	every time.Duration,
	frames chan<- tile_views.Frame,
) {
	defer close(frames)

	baseSeed := cfg.Seed
	run := int64(0)
	for range channerics.NewTicker(ctx.Done(), every) {
		run++
		if baseSeed != 0 {
			cfg.Seed = baseSeed + run
		}
		res, err := generator.Generate(cfg)
		if err != nil {
			log.Println("preview regeneration:", err)
			continue
		}
		select {
		case frames <- tile_views.Convert(res):
		case <-ctx.Done():
			return
		}
	}
}

// Serve blocks serving the page and websocket until the context ends or the
// listener fails.
func (server *Server) Serve(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", server.serveIndex)
	mux.HandleFunc("/ws", server.serveWebsocket)

	srv := &http.Server{Addr: server.addr, Handler: mux}
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		return srv.Close()
	})
	return group.Wait()
}

// serveWebsocket publishes view updates to the client.
func (server *Server) serveWebsocket(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		log.Println("upgrade:", err)
		return
	}

	defer server.closeWebsocket(ws)
	server.publishUpdates(ws)
}

// publishUpdates pushes view deltas as they arrive, dropping any that come
// faster than the publication rate and never letting a slow write stall the
// update stream: a pending write must drain before the next one starts.
func (server *Server) publishUpdates(ws *websocket.Conn) {
	publish := func(updates []tile_views.EleUpdate) <-chan error {
		errs := make(chan error)
		go func() {
			defer close(errs)
			if err := ws.WriteJSON(updates); err != nil {
				errs <- err
			}
		}()
		return errs
	}

	last := time.Now()
	var done <-chan error
	for updates := range server.view.Updates() {
		if time.Since(last) < pubResolution {
			continue
		}

		if done != nil {
			select {
			case err, isErr := <-done:
				if isErr {
					log.Println("publish:", err)
					return
				}
			default:
				continue
			}
		}

		last = time.Now()
		if err := ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			log.Println("deadline:", err)
			return
		}

		done = publish(updates)
	}
}

func (server *Server) closeWebsocket(ws *websocket.Conn) {
	_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
	_ = ws.WriteMessage(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	time.Sleep(closeGracePeriod)
	ws.Close()
}

// serveIndex renders the preview page: the view template plus the websocket
// bootstrap that applies pushed ops by element id.
func (server *Server) serveIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/html")

	if err := server.renderIndex(w); err != nil {
		_, _ = w.Write([]byte(err.Error()))
	}
}

func (server *Server) renderIndex(w io.Writer) (err error) {
	t := template.New("index.html").Funcs(template.FuncMap{
		"add":  func(i, j int) int { return i + j },
		"sub":  func(i, j int) int { return i - j },
		"mult": func(i, j int) int { return i * j },
		"div":  func(i, j int) int { return i / j },
	})

	var viewName string
	if viewName, err = server.view.Parse(t); err != nil {
		return
	}

	index := `<!DOCTYPE html>
	<html>
		<head>
			<link rel="icon" href="data:,">
			<script>
				const ws = new WebSocket("ws://" + location.host + "/ws");
				ws.onerror = function (event) {
					console.log('WebSocket error: ', event);
				};
				// When the server pushes view updates, find the eles and update them.
				ws.onmessage = function (event) {
					const items = JSON.parse(event.data)
					for (const update of items) {
						const ele = document.getElementById(update.EleId)
						if (!ele) continue;
						for (const op of update.Ops) {
							if (op.Key === "textContent") {
								ele.textContent = op.Value;
							} else {
								ele.setAttribute(op.Key, op.Value)
							}
						}
					}
				}
			</script>
		</head>
		<body>
		{{ template "` + viewName + `" . }}
		</body>
	</html>`
	if _, err = t.Parse(index); err != nil {
		return
	}

	err = t.Execute(w, server.lastFrame)
	return
}
