package honeycomb

import (
	libhoney "github.com/honeycombio/libhoney-go"

	"github.com/hivetrace/hivetrace/core"
)

// libhoneySubmitter adapts the libhoney client to the core.Submitter
// contract. libhoney buffers events locally and transmits in batches
// on its own goroutines; Submit only enqueues and returns.
type libhoneySubmitter struct {
	client *libhoney.Client
}

func newLibhoneySubmitter(cfg *core.Config) (*libhoneySubmitter, error) {
	if cfg.APIKey == "" {
		return nil, core.NewTelemetryError("honeycomb.New", "config", core.ErrMissingAPIKey)
	}
	if cfg.Dataset == "" {
		return nil, core.NewTelemetryError("honeycomb.New", "config", core.ErrMissingDataset)
	}
	client, err := libhoney.NewClient(libhoney.ClientConfig{
		APIKey:  cfg.APIKey,
		Dataset: cfg.Dataset,
		APIHost: cfg.APIHost,
	})
	if err != nil {
		return nil, core.NewTelemetryError("honeycomb.New", "client", err)
	}
	return &libhoneySubmitter{client: client}, nil
}

// Submit creates a new outgoing event, merges the record into it, and
// hands it to the client's buffer. An error means the buffer refused
// the record (e.g. capacity exceeded); the caller decides what to do
// with the loss.
func (s *libhoneySubmitter) Submit(record map[string]interface{}) error {
	ev := s.client.NewEvent()
	if err := ev.Add(record); err != nil {
		return err
	}
	return ev.Send()
}

// Close flushes pending events and shuts the client down.
func (s *libhoneySubmitter) Close() error {
	s.client.Close()
	return nil
}
