package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())

	err = Newf("formatted %s", "error")
	assert.NotNil(t, err)
	assert.Equal(t, "formatted error", err.Error())

	var appErr *ApplicationError
	assert.True(t, As(err, &appErr))
	assert.Equal(t, Unknown, appErr.Kind())
}

func TestWrapping(t *testing.T) {
	origErr := New("original error")
	wrappedErr := Wrap(origErr, "wrapped")
	assert.Equal(t, "wrapped: original error", wrappedErr.Error())
	assert.Equal(t, origErr, Unwrap(wrappedErr))

	wrappedFormatted := Wrapf(origErr, "formatted %s", "wrapper")
	assert.Equal(t, "formatted wrapper: original error", wrappedFormatted.Error())

	assert.Nil(t, Wrap(nil, "wrapper"))
	assert.Nil(t, Wrapf(nil, "formatted %s", "wrapper"))

	deepWrapped := Wrap(wrappedErr, "deeper")
	assert.Equal(t, "deeper: wrapped: original error", deepWrapped.Error())
	assert.True(t, Is(deepWrapped, origErr))
}

func TestStoreError(t *testing.T) {
	storeErr := NewStoreError("toggle failed", "toggle", ItemNotFound, nil)
	assert.Equal(t, "toggle failed: operation=toggle", storeErr.Error())
	assert.Equal(t, "toggle", storeErr.Operation())
	assert.Equal(t, ItemNotFound, storeErr.Kind())

	cause := fmt.Errorf("disk I/O error")
	storeErr = NewStoreError("insert failed", "add", StoreOperationFailed, cause)
	assert.Equal(t, "insert failed: operation=add: disk I/O error", storeErr.Error())
	assert.Equal(t, cause, Unwrap(storeErr))

	t.Run("sentinel matching by kind", func(t *testing.T) {
		err := fmt.Errorf("row 3: %w", NewStoreError("no item 7", "item_by_id", ItemNotFound, nil))
		assert.True(t, errors.Is(err, ErrItemNotFound))
		assert.False(t, errors.Is(err, ErrChecklistFull))
		assert.True(t, IsItemNotFound(err))
		assert.True(t, IsStoreError(err))
	})

	t.Run("full checklist", func(t *testing.T) {
		err := Wrap(ErrChecklistFull, "add item")
		assert.True(t, IsChecklistFull(err))
		assert.False(t, IsItemNotFound(err))
	})
}

func TestConfigError(t *testing.T) {
	configErr := NewConfigError("invalid value", "display.shape", InvalidConfig, nil)
	assert.Equal(t, "invalid value: display.shape", configErr.Error())
	assert.Equal(t, "display.shape", configErr.Param())
	assert.True(t, IsInvalidConfig(configErr))

	cause := fmt.Errorf("must be positive")
	configErr = NewConfigError("invalid value", "menu.row_height", InvalidConfig, cause)
	assert.Equal(t, "invalid value: menu.row_height: must be positive", configErr.Error())

	notFound := NewConfigError("missing", "path", ConfigNotFound, nil)
	assert.False(t, IsInvalidConfig(notFound))
	assert.False(t, IsInvalidConfig(New("plain")))
}

func TestResourceError(t *testing.T) {
	resErr := NewResourceError("no such bitmap", "TICK_BLACK", nil)
	assert.Equal(t, "no such bitmap: TICK_BLACK", resErr.Error())
	assert.Equal(t, "TICK_BLACK", resErr.ResourceID())
	assert.Equal(t, ResourceNotFound, KindOf(Wrap(resErr, "load window")))
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil", nil, Unknown},
		{"plain", fmt.Errorf("boom"), Unknown},
		{"application", New("boom"), Unknown},
		{"store", ErrStoreNotInitialized, StoreNotInitialized},
		{"config", ErrInvalidConfig, InvalidConfig},
		{"wrapped store", Wrap(ErrChecklistFull, "add"), ChecklistFull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "item_not_found", ItemNotFound.String())
	assert.Equal(t, "checklist_full", KindOf(Wrap(ErrChecklistFull, "add")).String())
	assert.Equal(t, "invalid_config", InvalidConfig.String())
	assert.Equal(t, "unknown", ErrorKind(99).String())
}
