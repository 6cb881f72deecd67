package controllers

import (
	"bytes"
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shopping/models"
)

type mockCartRepository struct {
	m         sync.RWMutex
	items     []models.CartItem
	err       error
	mutations int
}

func (r *mockCartRepository) Insert(_ context.Context, item models.CartItem) (primitive.ObjectID, error) {
	r.m.Lock()
	defer r.m.Unlock()
	if r.err != nil {
		return primitive.NilObjectID, r.err
	}
	r.mutations++
	item.ID = primitive.NewObjectID()
	r.items = append(r.items, item)
	return item.ID, nil
}

func (r *mockCartRepository) FindAll(context.Context) ([]models.CartItem, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	if r.err != nil {
		return nil, r.err
	}
	out := append([]models.CartItem(nil), r.items...)
	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i].ID[:], out[j].ID[:]) < 0
	})
	return out, nil
}

func (r *mockCartRepository) Update(_ context.Context, id primitive.ObjectID, item models.CartItem) error {
	r.m.Lock()
	defer r.m.Unlock()
	if r.err != nil {
		return r.err
	}
	r.mutations++
	for i := range r.items {
		if r.items[i].ID == id {
			item.ID = id
			r.items[i] = item
			return nil
		}
	}
	return nil
}

func (r *mockCartRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	r.m.Lock()
	defer r.m.Unlock()
	if r.err != nil {
		return r.err
	}
	r.mutations++
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *mockCartRepository) count() int {
	r.m.RLock()
	defer r.m.RUnlock()
	return len(r.items)
}

type mockProductRepository struct {
	m        sync.Mutex
	products []bson.M
	err      error
}

func (r *mockProductRepository) Insert(_ context.Context, product models.Product) (primitive.ObjectID, error) {
	r.m.Lock()
	defer r.m.Unlock()
	if r.err != nil {
		return primitive.NilObjectID, r.err
	}
	id := primitive.NewObjectID()
	doc := bson.M{"_id": id}
	for k, v := range product {
		doc[k] = v
	}
	r.products = append(r.products, doc)
	return id, nil
}

func (r *mockProductRepository) FindAll(context.Context) ([]bson.M, error) {
	r.m.Lock()
	defer r.m.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	return append([]bson.M(nil), r.products...), nil
}

type mockPinger struct {
	err error
}

func (p mockPinger) Ping(context.Context) error {
	return p.err
}

// hangingPinger only returns once its context ends.
type hangingPinger struct{}

func (hangingPinger) Ping(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}
