// Package storage persists the shopper's saved bundles and order history
// to a local bbolt file. Each collection lives in its own bucket as a
// single JSON-encoded list; a missing or unreadable record loads as an
// empty collection so a bad file never blocks startup.
package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	bolt "go.etcd.io/bbolt"

	"freshpick/internal/models"
)

var (
	bundlesBucket = []byte("bundles")
	ordersBucket  = []byte("orders")
)

// Record keys are versioned so a future schema change can migrate
// instead of misparsing old data.
var (
	bundlesKey = []byte("savedBundles_v1")
	ordersKey  = []byte("pastOrders_v1")
)

// Client is the handle to the local bolt database.
type Client struct {
	Path string
	db   *bolt.DB
}

// NewClient returns an unopened client for the given file path.
func NewClient(path string) *Client {
	return &Client{Path: path}
}

// Open creates or opens the database file and makes sure both buckets
// exist.
func (c *Client) Open() error {
	db, err := bolt.Open(c.Path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return fmt.Errorf("unable to open %s: %w", c.Path, err)
	}
	c.db = db

	return c.db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bundlesBucket); err != nil {
			return err
		}
		if _, err := tx.CreateBucketIfNotExists(ordersBucket); err != nil {
			return err
		}
		return nil
	})
}

// Close closes the underlying database.
func (c *Client) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// SaveBundles writes the full bundle list.
func (c *Client) SaveBundles(bundles []models.SavedBundle) error {
	return c.save(bundlesBucket, bundlesKey, bundles)
}

// SaveOrders writes the full order history, newest first.
func (c *Client) SaveOrders(orders []models.Order) error {
	return c.save(ordersBucket, ordersKey, orders)
}

// LoadBundles reads the persisted bundle list. A missing or undecodable
// record comes back as an empty list.
func (c *Client) LoadBundles() []models.SavedBundle {
	data := c.load(bundlesBucket, bundlesKey)
	if len(data) == 0 {
		return []models.SavedBundle{}
	}
	var bundles []models.SavedBundle
	if err := json.Unmarshal(data, &bundles); err != nil {
		log.Printf("[STORAGE] bundle record is unreadable, starting empty: %v", err)
		return []models.SavedBundle{}
	}
	return bundles
}

// LoadOrders reads the persisted order history.
func (c *Client) LoadOrders() []models.Order {
	data := c.load(ordersBucket, ordersKey)
	if len(data) == 0 {
		return []models.Order{}
	}
	var orders []models.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		log.Printf("[STORAGE] order record is unreadable, starting empty: %v", err)
		return []models.Order{}
	}
	return orders
}

func (c *Client) save(bucket, key []byte, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Put(key, data)
	})
}

func (c *Client) load(bucket, key []byte) []byte {
	var data []byte
	err := c.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucket).Get(key); v != nil {
			data = append(data, v...)
		}
		return nil
	})
	if err != nil {
		log.Printf("[STORAGE] read of %s failed, starting empty: %v", key, err)
		return nil
	}
	return data
}
