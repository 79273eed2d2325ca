package settings

import (
	"errors"

	"github.com/tarmac-project/settings/logging"
)

// Config controls how a Client reads and writes settings.
type Config struct {
	// Store holds the encoded settings. Required.
	Store Store

	// Logger receives debug and warning entries. Defaults to logging.Noop().
	Logger logging.Client

	// TileScale is used by ReadTilemap when the caller passes a zero scale.
	// Defaults to TileScaleSixteen.
	TileScale TileScale
}

// Client encodes and decodes structured settings over a Store. It holds no
// state between calls beyond its configuration.
type Client struct {
	store     Store
	log       logging.Client
	tileScale TileScale
}

// New creates a settings Client.
func New(cfg Config) (*Client, error) {
	if cfg.Store == nil {
		return nil, ErrStoreNil
	}

	c := &Client{
		store:     cfg.Store,
		log:       cfg.Logger,
		tileScale: cfg.TileScale,
	}
	if c.log == nil {
		c.log = logging.Noop()
	}
	if c.tileScale == 0 {
		c.tileScale = TileScaleSixteen
	}
	return c, nil
}

// read returns the stored value under key and whether it was present. It
// makes a single store read.
func (c *Client) read(key string) (string, bool, error) {
	v, err := c.store.ReadString(key)
	if errors.Is(err, ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (c *Client) corrupt(key, kind string, err error) {
	c.log.Warn("stored value is corrupt", "key", key, "kind", kind, "err", err)
}
