package client

import (
	"fmt"
	"net/url"

	"dreamshoots/pkg/model"
)

type ReelClient struct {
	httpClient *HttpClient
}

func NewReelClient(baseUrl, tokenHeader, adminToken string) *ReelClient {
	httpClient := NewHttpClient(baseUrl)
	if adminToken != "" {
		httpClient.SetHeader(tokenHeader, adminToken)
	}
	return &ReelClient{httpClient: httpClient}
}

func (c *ReelClient) Create(body any) (*Response, error) {
	return c.httpClient.POST("/api/v1/reels", body)
}

func (c *ReelClient) List() (*Response, error) {
	return c.httpClient.GET("/api/v1/reels")
}

func (c *ReelClient) Embeds() (*Response, error) {
	return c.httpClient.GET("/api/v1/reels/embeds")
}

func (c *ReelClient) Delete(id string) (*Response, error) {
	return c.httpClient.DELETE("/api/v1/reels/id/" + url.PathEscape(id))
}

func (c *ReelClient) DecodeReel(resp *Response) (*model.ReelView, error) {
	var reel model.ReelView
	if err := resp.DecodeJSON(&reel); err != nil {
		return nil, fmt.Errorf("could not decode reel json:\n%s\n%s", resp.ToString(), err)
	}
	return &reel, nil
}

func (c *ReelClient) DecodeReels(resp *Response) ([]*model.ReelView, error) {
	var reels []*model.ReelView
	if err := resp.DecodeJSON(&reels); err != nil {
		return nil, fmt.Errorf("could not decode reel list:\n%s\n%s", resp.ToString(), err)
	}
	return reels, nil
}
