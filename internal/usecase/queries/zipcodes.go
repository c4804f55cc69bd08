package queries

import (
	"context"
	"sort"
	"strings"

	"bloom-express/internal/infra"
	"bloom-express/internal/pkg/errs"
)

type ZipcodeReadStore interface {
	ListActive(ctx context.Context) ([]ZipcodeView, error)
	FindByZipcode(ctx context.Context, zipcode string) (*ZipcodeView, error)
}

type ZipcodeQueries interface {
	ListZipcodes(ctx context.Context) ([]ZipcodeView, error)
	ListCities(ctx context.Context) ([]string, error)
	Validate(ctx context.Context, zipcode string) (*ZipcodeView, error)
}

type zipcodeQueriesImpl struct {
	zipcodes ZipcodeReadStore
}

func NewZipcodeQueries(zipcodes ZipcodeReadStore) ZipcodeQueries {
	return &zipcodeQueriesImpl{zipcodes: zipcodes}
}

func (q *zipcodeQueriesImpl) ListZipcodes(ctx context.Context) ([]ZipcodeView, error) {
	views, err := q.zipcodes.ListActive(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list delivery zipcodes")
	}
	return views, nil
}

func (q *zipcodeQueriesImpl) ListCities(ctx context.Context) ([]string, error) {
	views, err := q.zipcodes.ListActive(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list delivery cities")
	}

	seen := make(map[string]struct{})
	var cities []string
	for _, v := range views {
		if _, ok := seen[v.City]; ok {
			continue
		}
		seen[v.City] = struct{}{}
		cities = append(cities, v.City)
	}
	sort.Strings(cities)
	return cities, nil
}

func (q *zipcodeQueriesImpl) Validate(ctx context.Context, zipcode string) (*ZipcodeView, error) {
	view, err := q.zipcodes.FindByZipcode(ctx, strings.TrimSpace(zipcode))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrZipcodeNotServed
		}
		return nil, errs.Wrap(err, "failed to look up zipcode")
	}
	if !view.Active {
		return nil, errs.ErrZipcodeNotServed
	}
	return view, nil
}
