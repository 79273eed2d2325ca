package kv

import (
	"errors"
	"fmt"

	sdkproto "github.com/tarmac-project/protobuf-go/sdk"
	proto "github.com/tarmac-project/protobuf-go/sdk/kvstore"
	"github.com/tarmac-project/settings/host"
	wapc "github.com/wapc/wapc-guest-tinygo"
	pb "google.golang.org/protobuf/proto"
)

const (
	capabilityName = "kvstore"
	fnGet          = "get"
	fnSet          = "set"
	fnDelete       = "delete"
	fnKeys         = "keys"

	hostStatusOK       = int32(200)
	hostStatusBadInput = int32(400)
	hostStatusMissing  = int32(404)
	hostStatusError    = int32(500)
)

// KV is the key-value capability interface.
type KV interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error

	// Delete removes key, or returns ErrKeyNotFound.
	Delete(key string) error

	// Keys lists every key in the store in host order.
	Keys() ([]string, error)

	// Close releases resources held by the client.
	Close() error
}

// Config controls how a Client instance interacts with the host runtime.
type Config struct {
	// SDKConfig provides the runtime namespace used for host calls.
	SDKConfig host.RuntimeConfig

	// HostCall overrides the waPC host function used for KV operations.
	HostCall host.HostCall
}

var (
	// ErrInvalidKey indicates an empty key.
	ErrInvalidKey = errors.New("key is invalid")

	// ErrInvalidValue indicates a nil value passed to Set.
	ErrInvalidValue = errors.New("value is invalid")

	// ErrKeyNotFound is returned when the host has no value for the key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrMarshalRequest wraps failures while encoding the request payload.
	ErrMarshalRequest = errors.New("failed to marshal request")

	// ErrUnmarshalResponse wraps failures while decoding the host response.
	ErrUnmarshalResponse = errors.New("failed to unmarshal response")

	// Host errors re-exported for callers that only import kv.
	ErrHostCall            = host.ErrHostCall
	ErrHostResponseInvalid = host.ErrHostResponseInvalid
	ErrHostError           = host.ErrHostError
)

// Client is the KV capability client implementation.
type Client struct {
	runtime  host.RuntimeConfig
	hostCall host.HostCall
}

// Ensure Client satisfies the KV interface at compile time.
var _ KV = (*Client)(nil)

// New creates a KV client.
func New(config Config) (*Client, error) {
	hostCall := config.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}
	return &Client{runtime: config.SDKConfig.WithDefaults(), hostCall: hostCall}, nil
}

// Get returns the value stored under key.
func (c *Client) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, ErrInvalidKey
	}

	var resp proto.KVStoreGetResponse
	callErr, err := c.call(fnGet, &proto.KVStoreGet{Key: key}, &resp)
	if err != nil {
		return nil, err
	}
	if err := validateStatus(resp.GetStatus(), callErr); err != nil {
		return nil, err
	}
	return resp.GetData(), nil
}

// Set stores value under key.
func (c *Client) Set(key string, value []byte) error {
	if key == "" {
		return ErrInvalidKey
	}
	if value == nil {
		return ErrInvalidValue
	}

	var resp proto.KVStoreSetResponse
	callErr, err := c.call(fnSet, &proto.KVStoreSet{Key: key, Data: value}, &resp)
	if err != nil {
		return err
	}
	return validateStatus(resp.GetStatus(), callErr)
}

// Delete removes key from the store.
func (c *Client) Delete(key string) error {
	if key == "" {
		return ErrInvalidKey
	}

	var resp proto.KVStoreDeleteResponse
	callErr, err := c.call(fnDelete, &proto.KVStoreDelete{Key: key}, &resp)
	if err != nil {
		return err
	}
	return validateStatus(resp.GetStatus(), callErr)
}

// Keys lists all keys held by the host store.
func (c *Client) Keys() ([]string, error) {
	var resp proto.KVStoreKeysResponse
	callErr, err := c.call(fnKeys, &proto.KVStoreKeys{ReturnProto: true}, &resp)
	if err != nil {
		return nil, err
	}
	if err := validateStatus(resp.GetStatus(), callErr); err != nil {
		return nil, err
	}
	return resp.GetKeys(), nil
}

// Close releases resources held by the client.
func (c *Client) Close() error {
	return nil
}

// call marshals req, invokes the host and unmarshals the reply into resp.
// A host error is only fatal when the host sent nothing back; otherwise it is
// returned as callErr and the response status decides.
func (c *Client) call(fn string, req, resp pb.Message) (callErr error, err error) {
	b, err := pb.Marshal(req)
	if err != nil {
		return nil, errors.Join(ErrMarshalRequest, err)
	}

	respBytes, callErr := c.hostCall(c.runtime.Namespace, capabilityName, fn, b)
	if callErr != nil && len(respBytes) == 0 {
		return nil, errors.Join(host.ErrHostCall, callErr)
	}

	if err := pb.Unmarshal(respBytes, resp); err != nil {
		if callErr != nil {
			return nil, errors.Join(host.ErrHostCall, callErr, host.ErrHostResponseInvalid, ErrUnmarshalResponse, err)
		}
		return nil, errors.Join(host.ErrHostResponseInvalid, ErrUnmarshalResponse, err)
	}
	return callErr, nil
}

func validateStatus(status *sdkproto.Status, callErr error) error {
	if status == nil {
		if callErr != nil {
			return errors.Join(host.ErrHostCall, callErr, host.ErrHostResponseInvalid)
		}
		return host.ErrHostResponseInvalid
	}

	code := status.GetCode()
	detail := fmt.Sprintf("host status %d", code)
	if msg := status.GetStatus(); msg != "" {
		detail = fmt.Sprintf("%s: %s", detail, msg)
	}

	switch code {
	case hostStatusOK:
		return nil
	case hostStatusMissing:
		if callErr != nil {
			return errors.Join(host.ErrHostCall, callErr, ErrKeyNotFound, errors.New(detail))
		}
		return errors.Join(ErrKeyNotFound, errors.New(detail))
	case hostStatusBadInput, hostStatusError:
		if callErr != nil {
			return errors.Join(host.ErrHostCall, callErr, host.ErrHostError, errors.New(detail))
		}
		return errors.Join(host.ErrHostError, errors.New(detail))
	default:
		statusErr := fmt.Errorf("unexpected %s", detail)
		if callErr != nil {
			return errors.Join(host.ErrHostCall, callErr, host.ErrHostResponseInvalid, statusErr)
		}
		return errors.Join(host.ErrHostResponseInvalid, statusErr)
	}
}
