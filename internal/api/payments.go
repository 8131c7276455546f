package api

import (
	"context"
	"net/http"

	"github.com/muhammedyasars/VoltMate-sub000/internal/apiclient"
	"github.com/muhammedyasars/VoltMate-sub000/internal/domain"
)

type Payments struct {
	Client *apiclient.Client
}

type PaymentMethodInput struct {
	Brand    string `json:"brand"`
	Number   string `json:"number"`
	ExpMonth int    `json:"expMonth"`
	ExpYear  int    `json:"expYear"`
}

func (a Payments) Methods(ctx context.Context) ([]domain.PaymentMethod, error) {
	return decode[[]domain.PaymentMethod](a.Client.Do(ctx, http.MethodGet, "/Payments/methods", nil, nil))
}

func (a Payments) AddMethod(ctx context.Context, in PaymentMethodInput) (domain.PaymentMethod, error) {
	return decode[domain.PaymentMethod](a.Client.Do(ctx, http.MethodPost, "/Payments/methods", nil, in))
}

func (a Payments) RemoveMethod(ctx context.Context, id string) error {
	_, err := a.Client.Do(ctx, http.MethodDelete, "/Payments/methods/"+id, nil, nil)
	return err
}

func (a Payments) History(ctx context.Context) ([]domain.PaymentRecord, error) {
	return decode[[]domain.PaymentRecord](a.Client.Do(ctx, http.MethodGet, "/Payments/history", nil, nil))
}
