package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"cloud.google.com/go/firestore"
	firestorepb "cloud.google.com/go/firestore/apiv1/firestorepb"
)

const (
	usersCollection      = "users"
	userEmailsCollection = "user_emails"
	itemsCollection      = "items"
	ordersCollection     = "orders"
	contactsCollection   = "contact_messages"
)

func countQuery(ctx context.Context, query firestore.Query) (int64, error) {
	results, err := query.NewAggregationQuery().WithCount("total").Get(ctx)
	if err != nil {
		return 0, err
	}

	raw, ok := results["total"]
	if !ok {
		return 0, fmt.Errorf("count aggregation returned no result")
	}
	value, ok := raw.(*firestorepb.Value)
	if !ok {
		return 0, fmt.Errorf("unexpected count aggregation type %T", raw)
	}
	return value.GetIntegerValue(), nil
}

// emailLockID keeps arbitrary email characters out of document ids.
func emailLockID(email string) string {
	sum := sha256.Sum256([]byte(email))
	return hex.EncodeToString(sum[:])
}
