package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbncursed/vkr/wallet-service/internal/service"
)

// Шаблон сознательно смешивает позиционные и именованные ссылки.
func TestDisplayTemplate_FieldPathsPreserved(t *testing.T) {
	rows := service.DisplayTemplate().CardTemplateOverride.CardRowTemplateInfos
	require.Len(t, rows, 3)
	for _, r := range rows {
		assert.True(t, r.Valid())
	}

	one := rows[0].OneItem
	require.NotNil(t, one)
	assert.Equal(t, service.FieldFirstModule, one.Item.FirstValue.Fields[0].FieldPath)
	assert.Equal(t, service.FieldFirstModule, one.Item.SecondValue.Fields[0].FieldPath)

	second := rows[1].ThreeItems
	require.NotNil(t, second)
	for _, it := range [...]string{
		second.StartItem.FirstValue.Fields[0].FieldPath,
		second.MiddleItem.FirstValue.Fields[0].FieldPath,
		second.EndItem.FirstValue.Fields[0].FieldPath,
	} {
		assert.Equal(t, "object.payload.genericObjects[0].textModulesData[0].id", it)
	}

	third := rows[2].ThreeItems
	require.NotNil(t, third)
	assert.Equal(t, service.FieldFirstModule, third.StartItem.FirstValue.Fields[0].FieldPath)
	assert.Equal(t, "object.textModulesData['fila']", third.MiddleItem.FirstValue.Fields[0].FieldPath)
	assert.Equal(t, "object.textModulesData['lugar']", third.EndItem.FirstValue.Fields[0].FieldPath)
}

func TestNewTemplatedClass(t *testing.T) {
	c := service.NewTemplatedClass(testIssuer + ".tpl")
	assert.Equal(t, testIssuer+".tpl", c.ID)
	assert.Equal(t, service.DisplayTemplate(), c.ClassTemplateInfo)
}
