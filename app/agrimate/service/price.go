package service

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"agrimate/app/agrimate/model"
	"agrimate/common/log"
)

// PriceFilter builds an equality filter from whichever parameters are
// present; absent parameters are omitted, not matched against null.
func PriceFilter(state, district string) bson.M {
	filter := bson.M{}
	if state != "" {
		filter["state"] = state
	}
	if district != "" {
		filter["district"] = district
	}
	return filter
}

func (svc *AgriMateService) SearchPrices(ctx context.Context, state, district string) ([]model.Price, error) {
	cursor, err := svc.CollectionPrices.Find(ctx, PriceFilter(state, district),
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		log.Logger().WithContext(ctx).Error("search prices: ", err.Error())
		return nil, ErrDatabase
	}
	prices := make([]model.Price, 0)
	if err = cursor.All(ctx, &prices); err != nil {
		log.Logger().WithContext(ctx).Error("search prices: ", err.Error())
		return nil, ErrDatabase
	}
	return prices, nil
}

func (svc *AgriMateService) CreatePrice(ctx context.Context, req model.Price) (model.Price, error) {
	InitObjectID(&req.ID)
	req.Date = time.Now().UTC()
	if _, err := svc.CollectionPrices.InsertOne(ctx, req); err != nil {
		log.Logger().WithContext(ctx).Error("create price: ", err.Error())
		return model.Price{}, ErrDatabase
	}
	return req, nil
}

// ExportPrices writes every price record to an xlsx sheet for offline market
// reports.
func (svc *AgriMateService) ExportPrices(ctx context.Context) (*excelize.File, error) {
	prices, err := svc.SearchPrices(ctx, "", "")
	if err != nil {
		return nil, err
	}
	f := excelize.NewFile()
	header := []interface{}{"Crop", "State", "District", "Market", "Price", "Unit", "Date", "Trend"}
	if err := f.SetSheetRow("Sheet1", "A1", &header); err != nil {
		return nil, err
	}
	for i, p := range prices {
		row := []interface{}{p.Crop, p.State, p.District, p.Market, p.Price, p.Unit, p.Date.Format("2006-01-02"), p.Trend}
		if err := f.SetSheetRow("Sheet1", fmt.Sprintf("A%d", i+2), &row); err != nil {
			return nil, err
		}
	}
	return f, nil
}
