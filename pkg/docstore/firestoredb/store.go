// Package firestoredb implements docstore.Store over Cloud Firestore.
package firestoredb

import (
	"context"
	"errors"
	"fmt"

	"assetbook/pkg/docstore"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

type Options struct {
	ProjectID       string
	CredentialsFile string
	ServiceAccount  ServiceAccount
}

// ClientOptions picks the credential source: an explicit key file, then the inline
// service account, then application default credentials.
func (o Options) ClientOptions() ([]option.ClientOption, error) {
	if o.CredentialsFile != "" {
		return []option.ClientOption{option.WithCredentialsFile(o.CredentialsFile)}, nil
	}
	if o.ServiceAccount.Empty() {
		return nil, nil
	}

	creds, err := o.ServiceAccount.JSON()
	if err != nil {
		return nil, err
	}
	return []option.ClientOption{option.WithCredentialsJSON(creds)}, nil
}

type Store struct {
	client *firestore.Client
}

func Connect(ctx context.Context, opts Options) (*Store, error) {
	if opts.ProjectID == "" {
		return nil, errors.New("firestore project id is required")
	}

	clientOpts, err := opts.ClientOptions()
	if err != nil {
		return nil, fmt.Errorf("firestore credentials: %w", err)
	}

	client, err := firestore.NewClient(ctx, opts.ProjectID, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("connect firestore: %w", err)
	}

	s := New(client)
	if err := s.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping firestore: %w", err)
	}
	return s, nil
}

func New(client *firestore.Client) *Store {
	return &Store{client: client}
}

// Insert writes serverTime fields as firestore.ServerTimestamp. The commit time of the
// create is the value those sentinels resolve to, so it is returned without a re-read.
func (s *Store) Insert(ctx context.Context, collection string, fields docstore.Fields, serverTime ...string) (*docstore.Document, error) {
	data := make(map[string]any, len(fields)+len(serverTime))
	for k, v := range fields {
		data[k] = v
	}
	for _, name := range serverTime {
		data[name] = firestore.ServerTimestamp
	}

	ref := s.client.Collection(collection).NewDoc()
	wr, err := ref.Create(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("insert into %s: %w", collection, err)
	}

	return &docstore.Document{
		ID:     ref.ID,
		Fields: docstore.Stamp(fields, wr.UpdateTime.UTC(), serverTime...),
	}, nil
}

func (s *Store) Find(ctx context.Context, collection string, filters ...docstore.Filter) ([]*docstore.Document, error) {
	q := s.client.Collection(collection).Query
	for _, f := range filters {
		q = q.Where(f.Field, "==", f.Value)
	}

	snaps, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}

	docs := make([]*docstore.Document, 0, len(snaps))
	for _, snap := range snaps {
		docs = append(docs, &docstore.Document{
			ID:     snap.Ref.ID,
			Fields: docstore.Fields(snap.Data()),
		})
	}
	return docs, nil
}

// EnsureIndex is a no-op: Firestore indexes single fields automatically.
func (s *Store) EnsureIndex(ctx context.Context, collection string, field string) error {
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	_, err := s.client.Collections(ctx).Next()
	if err != nil && !errors.Is(err, iterator.Done) {
		return err
	}
	return nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Close()
}
