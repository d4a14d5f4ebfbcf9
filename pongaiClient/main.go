package main

import (
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/cenkalti/backoff"
	"github.com/lguibr/asciiring/helpers"
	"github.com/urfave/cli"
	"golang.org/x/net/websocket"
)

func main() {
	app := makeapp()
	if err := app.Run(os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func makeapp() *cli.App {
	app := cli.NewApp()
	app.Name = "pongai"
	app.Usage = "Play pongai in the terminal"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "server", Value: "ws://localhost:3001", Usage: "Server websocket base URL"},
		cli.StringFlag{Name: "side", Value: "left", Usage: "Paddle to play: left, right or spectator"},
		cli.IntFlag{Name: "retries", Value: 5, Usage: "Connection attempts before giving up"},
	}
	app.Action = func(c *cli.Context) error {
		return play(c.String("server"), c.String("side"), uint64(c.Int("retries")))
	}
	return app
}

func dial(server, side string, retries uint64) (*websocket.Conn, error) {
	endpoint := server + "/ascii?side=" + url.QueryEscape(side)
	var conn *websocket.Conn
	connect := func() error {
		var err error
		conn, err = websocket.Dial(endpoint, "", "http://localhost/")
		if err != nil {
			fmt.Printf("Could not connect to %s: %v\n", endpoint, err)
		}
		return err
	}
	if err := backoff.Retry(connect, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), retries)); err != nil {
		return nil, err
	}
	return conn, nil
}

func play(server, side string, retries uint64) error {
	websocketConnection, err := dial(server, side, retries)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("Error connecting to server: %v", err), 1)
	}
	defer websocketConnection.Close()

	savedTerminalSettings, err := setRawMode(os.Stdin.Fd())
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("Error setting raw mode: %v", err), 1)
	}
	defer restoreMode(savedTerminalSettings)

	interruptSignalChannel := make(chan os.Signal, 1)
	signal.Notify(interruptSignalChannel, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interruptSignalChannel
		restoreMode(savedTerminalSettings)
		os.Exit(0)
	}()

	serverGone := make(chan struct{})
	go func() {
		defer close(serverGone)
		for {
			var frame string
			if err := websocket.Message.Receive(websocketConnection, &frame); err != nil {
				fmt.Println("Error reading from server:", err)
				return
			}
			helpers.ClearScreen()
			fmt.Print(frame)
			fmt.Println("w/s move, space stop, t toggle agent, r reset, q quit")
		}
	}()

	keys := make(chan byte)
	go func() {
		buffer := make([]byte, 1)
		for {
			if _, err := os.Stdin.Read(buffer); err != nil {
				close(keys)
				return
			}
			keys <- buffer[0]
		}
	}()

	for {
		select {
		case <-serverGone:
			return nil
		case key, open := <-keys:
			if !open {
				return nil
			}
			command, quit, ok := commandForKey(key)
			if quit {
				fmt.Println("Quitting game")
				return nil
			}
			if !ok {
				continue
			}
			if err := websocket.JSON.Send(websocketConnection, command); err != nil {
				return cli.NewExitError(fmt.Sprintf("Error sending to server: %v", err), 1)
			}
		}
	}
}
