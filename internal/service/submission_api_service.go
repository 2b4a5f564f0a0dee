package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/fadilmartias/submission-admin/internal/dto"
	"github.com/fadilmartias/submission-admin/internal/model"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

type SubmissionAPIServiceInterface interface {
	Upload(ctx context.Context, path string) (*dto.ImportResultDTO, error)
	Count(ctx context.Context) (int64, error)
	Filters(ctx context.Context) ([]model.SubmissionFilter, error)
	List(ctx context.Context, page, pageSize int, filterID uint) (*dto.SubmissionPageDTO, error)
}

// SubmissionAPIService talks to the admin HTTP API.
type SubmissionAPIService struct {
	client *resty.Client
}

func NewSubmissionAPIService(baseURL string, timeout time.Duration) *SubmissionAPIService {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &SubmissionAPIService{client: client}
}

func (s *SubmissionAPIService) Upload(ctx context.Context, path string) (*dto.ImportResultDTO, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetFile("file", path).
		Post("/api/upload")
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", path, err)
	}
	var out dto.ImportResultDTO
	if err := decodeData(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SubmissionAPIService) Count(ctx context.Context) (int64, error) {
	resp, err := s.client.R().SetContext(ctx).Get("/api/submissions/count")
	if err != nil {
		return 0, fmt.Errorf("count submissions: %w", err)
	}
	if err := checkResponse(resp); err != nil {
		return 0, err
	}
	return gjson.Get(resp.String(), "data.count").Int(), nil
}

func (s *SubmissionAPIService) Filters(ctx context.Context) ([]model.SubmissionFilter, error) {
	resp, err := s.client.R().SetContext(ctx).Get("/api/submissions/filters")
	if err != nil {
		return nil, fmt.Errorf("list filters: %w", err)
	}
	var out []model.SubmissionFilter
	if err := decodeData(resp, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// List fetches one page; a zero filterID lists without a filter.
func (s *SubmissionAPIService) List(ctx context.Context, page, pageSize int, filterID uint) (*dto.SubmissionPageDTO, error) {
	req := s.client.R().
		SetContext(ctx).
		SetQueryParam("page", strconv.Itoa(page)).
		SetQueryParam("pageSize", strconv.Itoa(pageSize))
	if filterID != 0 {
		req.SetQueryParam("filter", strconv.FormatUint(uint64(filterID), 10))
	}
	resp, err := req.Get("/api/submissions")
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	var out dto.SubmissionPageDTO
	if err := decodeData(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func checkResponse(resp *resty.Response) error {
	body := resp.String()
	if resp.IsError() || !gjson.Get(body, "success").Bool() {
		msg := gjson.Get(body, "message").String()
		if msg == "" {
			msg = "unexpected response"
		}
		if dev := gjson.Get(body, "dev_message").String(); dev != "" {
			msg += ": " + dev
		}
		return fmt.Errorf("%s: %s", resp.Status(), msg)
	}
	return nil
}

func decodeData(resp *resty.Response, out any) error {
	if err := checkResponse(resp); err != nil {
		return err
	}
	data := gjson.Get(resp.String(), "data")
	if !data.Exists() {
		return fmt.Errorf("response has no data")
	}
	if err := json.Unmarshal([]byte(data.Raw), out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
