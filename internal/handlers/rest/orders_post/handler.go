package orders_post

import (
	"net/http"

	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
	"marketplace/internal/handlers/rest/respond"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := respond.Actor(w, r, h.log)
	if !ok {
		return
	}

	var orderCreateDTO dto.OrderCreate
	if err := respond.DecodeJSON(r, &orderCreateDTO); err != nil {
		respond.ServiceError(w, h.log, err)
		return
	}

	// цены и итог от клиента не принимаются, их считает сервис по каталогу
	orderCreate := entities.OrderCreate{
		RestaurantID:  orderCreateDTO.RestaurantID,
		Items:         make([]entities.OrderItemCreate, len(orderCreateDTO.Items)),
		Address:       orderCreateDTO.Address,
		Phone:         orderCreateDTO.Phone,
		PaymentMethod: entities.PaymentMethod(orderCreateDTO.PaymentMethod),
	}
	if orderCreateDTO.DeliveryFee != nil {
		orderCreate.DeliveryFee = *orderCreateDTO.DeliveryFee
	}
	for i, item := range orderCreateDTO.Items {
		orderCreate.Items[i] = entities.OrderItemCreate{
			FoodItemID: item.FoodItemID,
			Quantity:   item.Quantity,
		}
	}

	order, err := h.service.CreateOrder(r.Context(), actor, orderCreate)
	if err != nil {
		respond.ServiceError(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, respond.Order(order))
}
