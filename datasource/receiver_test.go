package datasource

import (
	"testing"

	"github.com/sgostarter/libdatasource/datachange"
	"github.com/stretchr/testify/assert"
)

func TestBindItem(t *testing.T) {
	ds := NewMutableCompositeDataSource([]DataSource{
		NewMutableDataSource([]string{"a"}, WithSupplementaryItems(map[string]any{"header": "A"})),
		NewMutableDataSource([]int{1, 2}),
	})

	holder := NewItemHolder()

	var seen []any
	holder.Model().Subscribe(func(item any) {
		seen = append(seen, item)
	})

	BindItem(ds, datachange.NewIndexPath(1, 1), holder)
	assert.Equal(t, 2, holder.Item())

	assert.True(t, BindSupplementaryItem(ds, "header", 0, holder))
	assert.False(t, BindSupplementaryItem(ds, "header", 1, holder))

	assert.Equal(t, []any{nil, 2, "A"}, seen)
}
