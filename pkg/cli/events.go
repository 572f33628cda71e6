package cli

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Stream bridge events",
	Long:  `Tail the event stream of the running bridge. Prints one line per event until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return streamEvents()
	},
}

func init() {
	rootCmd.AddCommand(eventsCmd)
}

// streamEvents tails the bridge event feed via SSE
func streamEvents() error {
	url := strings.TrimSuffix(bridgeAddr, "/") + "/ipc/events"

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		PrintError(err)
		return nil
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	client := &http.Client{
		Timeout: 0, // No timeout for streaming
	}

	resp, err := client.Do(req)
	if err != nil {
		PrintConnectionError(bridgeAddr, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		PrintErrorMsg(strings.TrimSpace(string(body)))
		return nil
	}

	if !IsJSONOutput() {
		PrintInfo("Listening for events. Press Ctrl+C to stop.")
		PrintNewline()
	}

	reader := bufio.NewReader(resp.Body)
	eventType := ""
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "event: "):
			eventType = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			printEvent(eventType, strings.TrimPrefix(line, "data: "))
			eventType = ""
		}
	}
}

func printEvent(eventType, data string) {
	if eventType == "" {
		eventType = "message"
	}
	// The data line already carries the full event JSON
	if IsJSONOutput() {
		fmt.Println(data)
		return
	}
	fmt.Printf("  %s %s %s\n",
		DimStyle.Render(time.Now().Format("15:04:05")),
		BoldStyle.Render(eventType),
		data)
}
