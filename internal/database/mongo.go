package database

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"filestore/internal/config"
)

const mongoTimeout = 10 * time.Second

var (
	connectMongo = func(ctx context.Context, opts *options.ClientOptions) (*mongo.Client, error) {
		return mongo.Connect(ctx, opts)
	}
	pingMongo = func(ctx context.Context, cli *mongo.Client) error {
		return cli.Ping(ctx, readpref.Primary())
	}
	disconnectMongo = func(ctx context.Context, cli *mongo.Client) error {
		return cli.Disconnect(ctx)
	}
)

// Mongo bundles a connected client with the configured database.
type Mongo struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// BuildMongoURI builds a mongodb:// URI from the database config.
func BuildMongoURI(c config.DatabaseConfig) (string, error) {
	if c.Host == "" || c.Name == "" {
		return "", fmt.Errorf("invalid database config: host and name are required")
	}

	u := &url.URL{
		Scheme: "mongodb",
		Host:   net.JoinHostPort(c.Host, c.ResolvedPort()),
		Path:   "/" + c.Name,
	}
	if c.User != "" || c.Password != "" {
		u.User = url.UserPassword(c.User, c.Password)
	}
	if c.AuthSource != "" {
		q := url.Values{}
		q.Set("authSource", c.AuthSource)
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

// NewMongo connects to MongoDB and pings the primary so failures surface at startup.
func NewMongo(ctx context.Context, c config.DatabaseConfig) (*Mongo, error) {
	uri, err := BuildMongoURI(c)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(mongoTimeout).
		SetServerSelectionTimeout(mongoTimeout).
		SetRetryReads(true).
		SetRetryWrites(true)
	if c.MaxOpenConns > 0 {
		opts.SetMaxPoolSize(uint64(c.MaxOpenConns))
	}
	if c.ConnMaxLifetimeSec > 0 {
		opts.SetMaxConnIdleTime(time.Duration(c.ConnMaxLifetimeSec) * time.Second)
	}

	cli, err := connectMongo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := pingMongo(ctx, cli); err != nil {
		_ = disconnectMongo(context.Background(), cli)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &Mongo{Client: cli, DB: cli.Database(c.Name)}, nil
}

// Ping checks that the primary is reachable.
func (m *Mongo) Ping(ctx context.Context) error {
	return pingMongo(ctx, m.Client)
}

// Close disconnects the client, bounded by mongoTimeout.
func (m *Mongo) Close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()
	return disconnectMongo(ctx, m.Client)
}
