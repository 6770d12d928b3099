package sensor

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

const (
	readLimit    = 1 << 20
	readTimeout  = 60 * time.Second
	writeTimeout = 10 * time.Second
	pingInterval = 25 * time.Second
	sendBuffer   = 8
)

var upgrader = websocket.Upgrader{
	// Detectors run locally in a browser tab or a python script
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Server accepts detector connections on /ws and publishes every decoded
// pose frame to its mailbox.
type Server struct {
	addr    string
	tickHz  int
	mailbox *Mailbox

	nextID  atomic.Uint64
	mu      sync.Mutex
	clients map[uint64]*client
}

type client struct {
	id   uint64
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
	once sync.Once
}

func (c *client) close() {
	c.once.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}

// NewServer creates a server bound to addr that feeds mailbox
func NewServer(addr string, tickHz int, mailbox *Mailbox) *Server {
	return &Server{
		addr:    addr,
		tickHz:  tickHz,
		mailbox: mailbox,
		clients: make(map[uint64]*client),
	}
}

// Mailbox returns the mailbox samples are published to
func (s *Server) Mailbox() *Mailbox {
	return s.mailbox
}

// Handler returns the http handler serving /ws
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWS)
	return mux
}

// ListenAndServe serves until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.Handler()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		s.closeAll()
	}()

	log.Printf("Sensor server listening on %s (ws endpoint: /ws)", s.addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Clients returns the number of connected detectors
func (s *Server) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// BroadcastState pushes st to every detector, stamped with the number of
// accepted pose frames. Slow clients miss updates.
func (s *Server) BroadcastState(st State) {
	st.Frames = s.mailbox.Published()
	msg, err := Encode(MsgState, st)
	if err != nil {
		log.Printf("Failed to encode state: %v", err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.clients {
		select {
		case c.send <- msg:
		default:
		}
	}
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Sensor upgrade failed: %v", err)
		return
	}

	c := &client{
		id:   s.nextID.Add(1),
		conn: conn,
		send: make(chan []byte, sendBuffer),
		done: make(chan struct{}),
	}
	s.register(c)
	defer s.unregister(c)
	defer c.close()

	conn.SetReadLimit(readLimit)
	_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(readTimeout))
	})

	go s.writeLoop(c)
	s.readLoop(c)
}

func (s *Server) readLoop(c *client) {
	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Sensor client %d read: %v", c.id, err)
			}
			return
		}
		_ = c.conn.SetReadDeadline(time.Now().Add(readTimeout))

		if err := s.handle(c, msg); err != nil {
			log.Printf("Sensor client %d: %v", c.id, err)
		}
	}
}

func (s *Server) handle(c *client, msg []byte) error {
	env, err := DecodeEnvelope(msg)
	if err != nil {
		return err
	}

	switch env.T {
	case MsgHello:
		hello, err := DecodePayload[Hello](env)
		if err != nil {
			return err
		}
		log.Printf("Sensor client %d connected: %q", c.id, hello.Name)
		reply, err := Encode(MsgWelcome, Welcome{ClientID: c.id, TickHz: s.tickHz})
		if err != nil {
			return err
		}
		select {
		case c.send <- reply:
		case <-c.done:
		}
	case MsgPose:
		frame, err := DecodePayload[PoseFrame](env)
		if err != nil {
			return err
		}
		sample, err := frame.Sample()
		if err != nil {
			return err
		}
		s.mailbox.Publish(sample)
	default:
		return fmt.Errorf("unknown message type %q", env.T)
	}
	return nil
}

// writeLoop is the only writer on the connection
func (s *Server) writeLoop(c *client) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for {
		select {
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				c.close()
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.close()
				return
			}
		case <-c.done:
			return
		}
	}
}

func (s *Server) register(c *client) {
	s.mu.Lock()
	s.clients[c.id] = c
	s.mu.Unlock()
}

func (s *Server) unregister(c *client) {
	s.mu.Lock()
	delete(s.clients, c.id)
	s.mu.Unlock()
}

func (s *Server) closeAll() {
	s.mu.Lock()
	clients := make([]*client, 0, len(s.clients))
	for _, c := range s.clients {
		clients = append(clients, c)
	}
	s.mu.Unlock()
	for _, c := range clients {
		c.close()
	}
}
