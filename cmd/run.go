package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/viant/afs"
	"github.com/viant/mcp-get/internal/conv"
)

// RunCmd runs a Fluxor workflow; tracker actions are available as
// tracker/{id}:getMyIssues, tracker/{id}:getIssueDetails and
// tracker/{id}:searchIssues.
type RunCmd struct {
	Location   string `short:"l" long:"location" description:"Workflow definition URL (YAML)" required:"yes"`
	InputFile  string `short:"i" long:"input" description:"URL of JSON file with initial state (stdin if empty)"`
	State      string `short:"s" long:"state" description:"JSON object with initial state"`
	TimeoutSec int    `long:"timeout" description:"Seconds to wait for completion" default:"30"`
}

func (c *RunCmd) Execute(_ []string) error {
	ctx := context.Background()
	initState, err := c.initialState(ctx)
	if err != nil {
		return err
	}

	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	rt := svc.WorkflowRuntime()
	wf, err := rt.LoadWorkflow(ctx, c.Location)
	if err != nil {
		return fmt.Errorf("load workflow: %w", err)
	}
	process, wait, err := rt.StartProcess(ctx, wf, initState)
	if err != nil {
		return fmt.Errorf("start process: %w", err)
	}
	output, err := wait(ctx, time.Duration(c.TimeoutSec)*time.Second)
	if err != nil {
		return fmt.Errorf("wait for process: %w", err)
	}

	text, err := conv.Indent(output)
	if err != nil {
		return err
	}
	fmt.Println(text)
	svc.Logger().Info("process completed", "process", process.ID)
	return nil
}

func (c *RunCmd) initialState(ctx context.Context) (map[string]interface{}, error) {
	initState := make(map[string]interface{})
	var data []byte
	switch {
	case c.State != "":
		data = []byte(strings.TrimSpace(c.State))
	case c.InputFile != "":
		var err error
		if data, err = afs.New().DownloadWithURL(ctx, c.InputFile); err != nil {
			return nil, fmt.Errorf("read input file: %w", err)
		}
	default:
		// stdin is optional; EOF or a terminal yields an empty state
		if stat, err := os.Stdin.Stat(); err == nil && stat.Mode()&os.ModeCharDevice == 0 {
			data, _ = io.ReadAll(os.Stdin)
		}
	}
	if len(data) == 0 {
		return initState, nil
	}
	if err := json.Unmarshal(data, &initState); err != nil {
		return nil, fmt.Errorf("decode initial state: %w", err)
	}
	return initState, nil
}
