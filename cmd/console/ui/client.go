package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client is a small JSON client for the taskboard API.
type Client struct {
	BaseURL string
	Token   string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{BaseURL: baseURL, http: &http.Client{Timeout: 10 * time.Second}}
}

type User struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type Project struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	OwnerID     uint   `json:"owner_id"`
}

type Task struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	ProjectID   uint   `json:"project_id"`
	AssignedTo  uint   `json:"assigned_to"`
	OrderIndex  *int   `json:"order_index"`
}

type authResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type apiError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
		Status  int    `json:"status"`
	} `json:"error"`
}

func (c *Client) do(method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequest(method, c.BaseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		var ae apiError
		if json.NewDecoder(resp.Body).Decode(&ae) == nil && ae.Error.Message != "" {
			return fmt.Errorf("%s (%d)", ae.Error.Message, resp.StatusCode)
		}
		return fmt.Errorf("request failed (%d)", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) Login(email, password string) (*User, error) {
	var resp authResponse
	err := c.do(http.MethodPost, "/api/auth/login", map[string]string{"email": email, "password": password}, &resp)
	if err != nil {
		return nil, err
	}
	c.Token = resp.Token
	return &resp.User, nil
}

func (c *Client) Projects() ([]Project, error) {
	var projects []Project
	return projects, c.do(http.MethodGet, "/api/projects", nil, &projects)
}

func (c *Client) Tasks() ([]Task, error) {
	var tasks []Task
	return tasks, c.do(http.MethodGet, "/api/tasks", nil, &tasks)
}

func (c *Client) SetTaskStatus(id uint, status string) (*Task, error) {
	var t Task
	err := c.do(http.MethodPut, fmt.Sprintf("/api/tasks/%d", id), map[string]string{"status": status}, &t)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
