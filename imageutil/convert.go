// Package imageutil connects rasters to the rest of the Go image
// ecosystem: conversion to and from image.Image, file codecs, resizing,
// histogram charts and synthetic test patterns.
package imageutil

import (
	"image"
	"image/color"

	"github.com/varseus/imageproc"
)

// FromImage converts any image.Image to a Raster with max value 255.
// Alpha is discarded after un-premultiplying.
func FromImage(img image.Image) (*imageproc.Raster, error) {
	return FromImageMax(img, 255)
}

// FromImageMax converts img to a Raster with the given max value, rounding
// each 16-bit channel to the nearest step.
func FromImageMax(img image.Image, max int) (*imageproc.Raster, error) {
	bounds := img.Bounds()
	rows := make([][]imageproc.Pixel, bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := make([]imageproc.Pixel, bounds.Dx())
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBA64Model.Convert(img.At(x, y)).(color.NRGBA64)
			p, err := imageproc.NewPixel(
				from16(c.R, max), from16(c.G, max), from16(c.B, max), max)
			if err != nil {
				return nil, err
			}
			row[x-bounds.Min.X] = p
		}
		rows[y-bounds.Min.Y] = row
	}
	return imageproc.NewRaster(rows)
}

// ToRGBA converts a Raster to an 8-bit image.RGBA, rescaling channels when
// the max value is not 255.
func ToRGBA(r *imageproc.Raster) *image.RGBA {
	dst := image.NewRGBA(r.Bounds())
	max := r.MaxValue()

	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			p, _ := r.PixelAt(x, y)
			dst.SetRGBA(x, y, color.RGBA{
				R: to8(p.R(), max),
				G: to8(p.G(), max),
				B: to8(p.B(), max),
				A: 255,
			})
		}
	}
	return dst
}

// ToGray converts a Raster to an 8-bit image.Gray using its luma.
func ToGray(r *imageproc.Raster) *image.Gray {
	dst := image.NewGray(r.Bounds())
	max := r.MaxValue()

	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			p, _ := r.PixelAt(x, y)
			dst.SetGray(x, y, color.Gray{Y: to8(p.LumaPixel().R(), max)})
		}
	}
	return dst
}

func from16(v uint16, max int) int {
	return (int(v)*max + 0x7fff) / 0xffff
}

func to8(v, max int) uint8 {
	if max == 255 {
		return uint8(v)
	}
	if max == 0 {
		return 0
	}
	return uint8((v*255 + max/2) / max)
}
