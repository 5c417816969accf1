package catalog

import (
	"context"
	"errors"
	"testing"

	errx "github.com/sheetshop/storefront/internal/core/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Success(t *testing.T) {
	c, err := Load(context.Background(), StaticSource(shopSheet))

	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
}

func TestLoad_FetchFailure(t *testing.T) {
	cause := errors.New("no route to host")
	c, err := Load(context.Background(), &countingSource{err: cause})

	assert.Nil(t, c)
	assert.ErrorIs(t, err, errx.ErrFetchFailed)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, errx.LoadErrorMessage, errx.MessageOf(err))
}

func TestLoad_NoProducts(t *testing.T) {
	c, err := Load(context.Background(), StaticSource("name,price\n,100\n"))

	assert.Nil(t, c)
	assert.ErrorIs(t, err, errx.ErrNoProducts)
	assert.Equal(t, errx.NoProductsMessage, errx.MessageOf(err))
}
