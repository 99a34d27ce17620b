//go:build !windows
// +build !windows

package pkg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path"
	"syscall"
	"time"
	"unsafe"

	"github.com/creack/pty"
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/gliderlabs/ssh"
	gossh "golang.org/x/crypto/ssh"
)

const (
	ServerIdleTimeout = 5 * time.Minute
	SshPort           = ":2222"
)

// Server runs one client process, and so one independent game, per SSH session
type Server struct {
	*ssh.Server

	Binary string
}

func setWinsize(f *os.File, w, h int) {
	syscall.Syscall(syscall.SYS_IOCTL, f.Fd(), uintptr(syscall.TIOCSWINSZ),
		uintptr(unsafe.Pointer(&struct{ h, w, x, y uint16 }{uint16(h), uint16(w), 0, 0})))
}

// NewServer creates an SSH server listening on addr. An empty hostKey uses
// ~/.ssh/id_rsa.
func NewServer(addr, binary, hostKey string) (*Server, error) {
	if addr == "" {
		addr = SshPort
	}
	if binary == "" {
		return nil, errors.New("server: client binary must be specified")
	}

	if hostKey == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		hostKey = path.Join(homeDir, ".ssh", "id_rsa")
	}

	s := &Server{Binary: binary}
	s.Server = &ssh.Server{
		Addr:        addr,
		IdleTimeout: ServerIdleTimeout,
		Handler:     s.handle,
		PtyCallback: func(ctx ssh.Context, pty ssh.Pty) bool {
			return true
		},
		PublicKeyHandler: func(ctx ssh.Context, key ssh.PublicKey) bool {
			return true
		},
		PasswordHandler: func(ctx ssh.Context, password string) bool {
			return true
		},
		KeyboardInteractiveHandler: func(ctx ssh.Context, challenger gossh.KeyboardInteractiveChallenge) bool {
			return true
		},
	}

	if err := s.SetOption(ssh.HostKeyFile(hostKey)); err != nil {
		return nil, fmt.Errorf("server: failed to load host key: %w", err)
	}

	return s, nil
}

// sessionArgs returns the client arguments for an SSH user
func (s *Server) sessionArgs(user string) []string {
	return []string{"--nick", Nickname(user)}
}

func (s *Server) handle(sess ssh.Session) {
	name := petname.Generate(2, "-")

	ptyReq, winCh, isPty := sess.Pty()
	if !isPty {
		io.WriteString(sess, "non-interactive terminals are not supported\n")

		sess.Exit(1)
		return
	}

	log.Printf("Session %s started for %s from %s", name, sess.User(), sess.RemoteAddr())
	defer log.Printf("Session %s ended", name)

	cmdCtx, cancelCmd := context.WithCancel(sess.Context())
	defer cancelCmd()

	cmd := exec.CommandContext(cmdCtx, s.Binary, s.sessionArgs(sess.User())...)
	cmd.Env = append(os.Environ(), fmt.Sprintf("TERM=%s", ptyReq.Term))

	f, err := pty.Start(cmd)
	if err != nil {
		log.Printf("Session %s: failed to start client: %s", name, err)
		io.WriteString(sess, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		sess.Exit(1)
		return
	}
	defer f.Close()

	setWinsize(f, ptyReq.Window.Width, ptyReq.Window.Height)
	go func() {
		for win := range winCh {
			setWinsize(f, win.Width, win.Height)
		}
	}()

	go func() {
		io.Copy(f, sess)
	}()
	io.Copy(sess, f)

	cancelCmd()
	if err := cmd.Wait(); err != nil {
		log.Printf("Session %s: client exited: %s", name, err)
	}
}
