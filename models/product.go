package models

import "go.mongodb.org/mongo-driver/bson"

// Product is stored exactly as the client sent it. Only the identifier is
// owned by the store.
type Product bson.M

// NewProduct copies body without any client-supplied "_id".
func NewProduct(body map[string]interface{}) Product {
	product := make(Product, len(body))
	for k, v := range body {
		if k == "_id" {
			continue
		}
		product[k] = v
	}
	return product
}
