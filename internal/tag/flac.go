// Package tag writes resolved track metadata into FLAC files so DJ software
// picks BPM/key up directly from the library.
package tag

import (
	"fmt"

	"github.com/go-flac/flacpicture"
	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"

	"github.com/iremlopsum/yt-stem-splitter/internal/resolve"
)

// WriteTrackInfo rewrites the FLAC file's vorbis comments with the track
// title and the resolved BPM/key/camelot, and embeds coverData (JPEG) as the
// front cover when present.
func WriteTrackInfo(filePath, title string, info resolve.TrackInfo, coverData []byte) error {
	f, err := flac.ParseFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to parse FLAC file: %w", err)
	}

	// Drop existing VORBIS_COMMENT and PICTURE blocks so reruns stay clean.
	var kept []*flac.MetaDataBlock
	for _, block := range f.Meta {
		if block.Type != flac.VorbisComment && block.Type != flac.Picture {
			kept = append(kept, block)
		}
	}
	f.Meta = kept

	comment := flacvorbis.New()
	addField(comment, flacvorbis.FIELD_TITLE, title)
	addField(comment, "BPM", info.BPM)
	addField(comment, "INITIALKEY", info.Key)
	if info.Camelot != "" {
		addField(comment, "COMMENT", "Camelot "+info.Camelot)
	}

	vorbisCommentBlock := comment.Marshal()
	f.Meta = append(f.Meta, &vorbisCommentBlock)

	if err := addCoverArt(f, coverData); err != nil {
		return err
	}

	if err := f.Save(filePath); err != nil {
		return fmt.Errorf("failed to save FLAC file with metadata: %w", err)
	}
	return nil
}

// addField adds a field to vorbis comment only if value is not empty
func addField(comment *flacvorbis.MetaDataBlockVorbisComment, field, value string) {
	if value != "" {
		comment.Add(field, value)
	}
}

// addCoverArt embeds coverData as the front cover picture block.
func addCoverArt(f *flac.File, coverData []byte) error {
	if len(coverData) == 0 {
		return nil
	}

	picture, err := flacpicture.NewFromImageData(
		flacpicture.PictureTypeFrontCover,
		"Front Cover",
		coverData,
		"image/jpeg",
	)
	if err != nil {
		return fmt.Errorf("failed to create picture metadata: %w", err)
	}

	pictureBlock := picture.Marshal()
	f.Meta = append(f.Meta, &pictureBlock)
	return nil
}
