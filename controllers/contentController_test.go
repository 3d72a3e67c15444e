package controllers

import (
	"testing"

	"digitalservice-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFooterColumnsGroupsByParentColumn(t *testing.T) {
	links := []models.FooterLink{
		{ParentColumn: "layanan", ColumnTitle: "Layanan", LinkText: "Website", LinkURL: "/services/website", ColumnOrder: 1},
		{ParentColumn: "layanan", ColumnTitle: "Layanan", LinkText: "Mobile App", LinkURL: "/services/mobile", ColumnOrder: 2},
		{ParentColumn: "perusahaan", ColumnTitle: "Perusahaan", LinkText: "Tentang Kami", LinkURL: "/about", ColumnOrder: 1},
	}

	columns := buildFooterColumns(links)
	require.Len(t, columns, 2)

	assert.Equal(t, "layanan", columns[0].ParentColumn)
	assert.Equal(t, "Layanan", columns[0].Title)
	require.Len(t, columns[0].Links, 2)
	assert.Equal(t, "Website", columns[0].Links[0].LinkText)
	assert.Equal(t, "Mobile App", columns[0].Links[1].LinkText)

	assert.Equal(t, "perusahaan", columns[1].ParentColumn)
	require.Len(t, columns[1].Links, 1)
	assert.Equal(t, "Tentang Kami", columns[1].Links[0].LinkText)
}

func TestBuildFooterColumnsTitleFromFirstCarrier(t *testing.T) {
	links := []models.FooterLink{
		{ParentColumn: "layanan", LinkText: "Website", LinkURL: "/services/website", ColumnOrder: 1},
		{ParentColumn: "layanan", ColumnTitle: "Layanan", LinkText: "Mobile App", LinkURL: "/services/mobile", ColumnOrder: 2},
	}

	columns := buildFooterColumns(links)
	require.Len(t, columns, 1)
	assert.Equal(t, "Layanan", columns[0].Title)
	require.Len(t, columns[0].Links, 2)
}

func TestBuildFooterColumnsEmpty(t *testing.T) {
	columns := buildFooterColumns(nil)
	assert.Empty(t, columns)
	assert.NotNil(t, columns)
}
