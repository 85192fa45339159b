package repositories

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"

	"storefront/models"
)

// PendingOrderRepository journals orders whose payment was captured but whose
// submission to the order service failed, so the payment reference survives a
// restart and the order can be replayed.
type PendingOrderRepository interface {
	Save(order models.PendingOrder) error
	List() []models.PendingOrder
	Delete(paymentIntentID string) error
}

type FilePendingOrderRepository struct {
	dir string
}

func NewFilePendingOrderRepository(dir string) *FilePendingOrderRepository {
	return &FilePendingOrderRepository{dir: dir}
}

func (r *FilePendingOrderRepository) path(paymentIntentID string) string {
	return filepath.Join(r.dir, sanitizeOwner(paymentIntentID)+".json")
}

func (r *FilePendingOrderRepository) Save(order models.PendingOrder) error {
	data, err := json.Marshal(order)
	if err != nil {
		return err
	}
	return writeFileAtomic(r.dir, r.path(order.PaymentIntentID), data)
}

func (r *FilePendingOrderRepository) List() []models.PendingOrder {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil
	}

	orders := []models.PendingOrder{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(r.dir, entry.Name()))
		if err != nil {
			continue
		}

		var order models.PendingOrder
		if err := json.Unmarshal(data, &order); err != nil {
			log.Printf("Skipping corrupt pending order %s: %v", entry.Name(), err)
			continue
		}
		orders = append(orders, order)
	}
	return orders
}

func (r *FilePendingOrderRepository) Delete(paymentIntentID string) error {
	err := os.Remove(r.path(paymentIntentID))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
