package client

import (
	"context"

	"assetbook/pkg/model"
)

const assetsPath = "/api/assets"

type AssetClient struct {
	httpClient *HttpClient
}

func NewAssetClient(baseUrl string) *AssetClient {
	return &AssetClient{
		httpClient: NewHttpClient(baseUrl),
	}
}

func (c *AssetClient) List(ctx context.Context) ([]model.Asset, error) {
	resp, err := c.httpClient.GET(ctx, assetsPath)
	if err != nil {
		return nil, err
	}

	var assets []model.Asset
	if err := decodeResponse(resp, &assets); err != nil {
		return nil, err
	}
	return assets, nil
}

func (c *AssetClient) Create(ctx context.Context, input model.AssetInput) (*model.Asset, error) {
	resp, err := c.httpClient.POST(ctx, assetsPath, input)
	if err != nil {
		return nil, err
	}

	var asset model.Asset
	if err := decodeResponse(resp, &asset); err != nil {
		return nil, err
	}
	return &asset, nil
}
