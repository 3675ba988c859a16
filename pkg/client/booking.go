package client

import (
	"fmt"
	"net/url"

	"dreamshoots/pkg/model"
)

type BookingClient struct {
	httpClient *HttpClient
}

// NewBookingClient returns a client for the bookings API. adminToken may be
// empty for callers that only use the public intake.
func NewBookingClient(baseUrl, tokenHeader, adminToken string) *BookingClient {
	httpClient := NewHttpClient(baseUrl)
	if adminToken != "" {
		httpClient.SetHeader(tokenHeader, adminToken)
	}
	return &BookingClient{httpClient: httpClient}
}

func (c *BookingClient) Create(body any) (*Response, error) {
	return c.httpClient.POST("/api/v1/bookings", body)
}

func (c *BookingClient) CreateWithIdempotencyKey(body any, key string) (*Response, error) {
	return c.httpClient.POSTWithHeaders("/api/v1/bookings", body, map[string]string{"Idempotency-Key": key})
}

func (c *BookingClient) CreateRaw(rawBody []byte) (*Response, error) {
	return c.httpClient.POSTRaw("/api/v1/bookings", rawBody)
}

func (c *BookingClient) List(status, preferredDate string) (*Response, error) {
	return c.httpClient.GET("/api/v1/bookings" + filterQuery(status, preferredDate, ""))
}

func (c *BookingClient) Dashboard(status, preferredDate string) (*Response, error) {
	return c.httpClient.GET("/api/v1/bookings/dashboard" + filterQuery(status, preferredDate, ""))
}

func (c *BookingClient) Summary() (*Response, error) {
	return c.httpClient.GET("/api/v1/bookings/summary")
}

func (c *BookingClient) GetByID(id string) (*Response, error) {
	return c.httpClient.GET("/api/v1/bookings/id/" + url.PathEscape(id))
}

func (c *BookingClient) UpdateStatus(id, status string) (*Response, error) {
	path := "/api/v1/bookings/id/" + url.PathEscape(id) + "/status"
	return c.httpClient.PATCH(path, map[string]string{"status": status})
}

func (c *BookingClient) Delete(id string) (*Response, error) {
	return c.httpClient.DELETE("/api/v1/bookings/id/" + url.PathEscape(id))
}

func (c *BookingClient) Export(format, status, preferredDate string) (*Response, error) {
	return c.httpClient.GET("/api/v1/bookings/export" + filterQuery(status, preferredDate, format))
}

func (c *BookingClient) DecodeBooking(resp *Response) (*model.Booking, error) {
	var booking model.Booking
	if err := resp.DecodeJSON(&booking); err != nil {
		return nil, fmt.Errorf("could not decode booking json:\n%s\n%s", resp.ToString(), err)
	}
	return &booking, nil
}

func (c *BookingClient) DecodeBookings(resp *Response) ([]*model.Booking, error) {
	var bookings []*model.Booking
	if err := resp.DecodeJSON(&bookings); err != nil {
		return nil, fmt.Errorf("could not decode booking list:\n%s\n%s", resp.ToString(), err)
	}
	return bookings, nil
}

func (c *BookingClient) DecodeSummary(resp *Response) (*model.BookingSummary, error) {
	var summary model.BookingSummary
	if err := resp.DecodeJSON(&summary); err != nil {
		return nil, fmt.Errorf("could not decode booking summary:\n%s\n%s", resp.ToString(), err)
	}
	return &summary, nil
}

func (c *BookingClient) DecodeDashboard(resp *Response) (*model.BookingList, error) {
	var list model.BookingList
	if err := resp.DecodeJSON(&list); err != nil {
		return nil, fmt.Errorf("could not decode booking dashboard:\n%s\n%s", resp.ToString(), err)
	}
	return &list, nil
}

func filterQuery(status, preferredDate, format string) string {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	if preferredDate != "" {
		q.Set("preferred_date", preferredDate)
	}
	if format != "" {
		q.Set("format", format)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}
