package client

import (
	"context"
	"fmt"
)

type Status int

const (
	Idle Status = iota
	Loading
	Loaded
	LoadError
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case LoadError:
		return "load_error"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// State is the cached view of one resource: the full list as last fetched,
// or the error that prevented fetching it.
type State[T any] struct {
	Status  Status
	Records []T
	Err     error
}

// Page drives one resource view: loading, searching and submitting. A Page is
// not safe for concurrent use; each view owns its own Page.
type Page[T any, Req any] struct {
	client   *Client
	resource Resource[T, Req]

	State      State[T]
	Submitting bool
}

func NewPage[T any, Req any](client *Client, resource Resource[T, Req]) *Page[T, Req] {
	return &Page[T, Req]{
		client:   client,
		resource: resource,
	}
}

func (p *Page[T, Req]) Resource() Resource[T, Req] {
	return p.resource
}

// Load fetches the full list. On success the cached records are replaced;
// on failure the previous records are dropped and the error kept. There is
// no retry.
func (p *Page[T, Req]) Load(ctx context.Context) error {
	p.State.Status = Loading
	p.State.Err = nil

	var records []T
	if err := p.client.get(ctx, p.resource.Path, &records); err != nil {
		p.State = State[T]{Status: LoadError, Err: err}
		return err
	}
	if records == nil {
		records = []T{}
	}

	p.State = State[T]{Status: Loaded, Records: records}
	return nil
}

// Search filters the cached records; it never touches the network.
func (p *Page[T, Req]) Search(term string) []T {
	return Filter(p.State.Records, term, p.resource.Row)
}

// Submit validates form, creates the record and reloads the full list. The
// returned error is a *FormError, *APIError or *NetworkError from the create
// request; a failed reload after a successful create only shows in State.
func (p *Page[T, Req]) Submit(ctx context.Context, form *Req) (*T, error) {
	if form == nil {
		return nil, errMissingFields
	}
	if p.resource.PrepareForm != nil {
		if err := p.resource.PrepareForm(form); err != nil {
			return nil, err
		}
	}

	p.Submitting = true
	defer func() { p.Submitting = false }()

	var created T
	if err := p.client.post(ctx, p.resource.Path, form, &created); err != nil {
		return nil, err
	}

	_ = p.Load(ctx)

	return &created, nil
}
