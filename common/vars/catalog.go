package vars

import (
	"spiriverse/common/constant"
	"spiriverse/model"
	"spiriverse/outbound/sqlgen"
	"sync/atomic"
	"unsafe"
)

// catalogPtr holds a pointer to the current share-code -> catalog map.
// This approach allows for lock-free reads with atomic updates.
var catalogPtr unsafe.Pointer

// GetCatalog returns the public catalog for a share code, if present in the
// current snapshot. This operation is lock-free and safe for concurrent access.
func GetCatalog(shareCode string) (model.ExpoCatalogResponse, bool) {
	ptr := atomic.LoadPointer(&catalogPtr)
	if ptr == nil {
		return model.ExpoCatalogResponse{}, false
	}

	m := *(*map[string]model.ExpoCatalogResponse)(ptr)
	catalog, ok := m[shareCode]
	return catalog, ok
}

// SetCatalogs atomically replaces the whole snapshot.
// It creates a copy of the input map to ensure consistency.
// Pass nil or an empty map to clear the snapshot.
func SetCatalogs(catalogs map[string]model.ExpoCatalogResponse) {
	var ptr unsafe.Pointer

	if len(catalogs) > 0 {
		catalogsCopy := make(map[string]model.ExpoCatalogResponse, len(catalogs))
		for code, catalog := range catalogs {
			catalogsCopy[code] = catalog
		}
		ptr = unsafe.Pointer(&catalogsCopy)
	}

	atomic.StorePointer(&catalogPtr, ptr)
}

func init() {
	atomic.StorePointer(&catalogPtr, nil)
}

// BuildCatalogResponse renders DB rows into the public catalog shape shared by
// the HTTP fallback path and the cron snapshot refresh.
func BuildCatalogResponse(name, status string, items []sqlgen.ListCatalogItemsByExpoRow) model.ExpoCatalogResponse {
	resp := model.ExpoCatalogResponse{
		Name:   name,
		Status: status,
		Items:  []model.CatalogItemResponse{},
	}

	for _, item := range items {
		out := model.CatalogItemResponse{
			Id:          item.ID,
			Name:        item.Name,
			PriceAmount: item.PriceAmount,
			Purchasable: item.Enabled && status == constant.EventStatusLive,
		}

		if item.TrackInventory {
			remaining := item.QuantityTotal.Int32 - item.QuantitySold
			if remaining < 0 {
				remaining = 0
			}
			out.Remaining = &remaining
			out.Purchasable = out.Purchasable && remaining > 0
		}

		resp.Items = append(resp.Items, out)
	}

	return resp
}
