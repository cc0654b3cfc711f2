// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-paperless/internal/service"
	"github.com/MKhiriev/go-paperless/models"
)

// RequestCommand runs one resource operation.
type RequestCommand struct {
	*baseCommand

	flagResource  string
	flagOperation string
	flagParams    string
	flagOut       string
	params        paramFlag
}

func (c *RequestCommand) Synopsis() string {
	return "Run one operation against a Paperless-NGX resource"
}

func (c *RequestCommand) Help() string {
	c.registerFlags()
	return `Usage: paperless request -resource R -operation O [options]

  Runs one operation against a Paperless-NGX resource and prints the JSON
  response. A document download is written to -out (or to its own file
  name) and described under the "data" property.

  Resources: ` + resourceList() + `
  Operations: create, get, getById, update, partialUpdate, delete, download` +
		c.flagsHelp()
}

func (c *RequestCommand) registerFlags() {
	if c.flags.Lookup("resource") != nil {
		return
	}
	c.flags.StringVar(&c.flagResource, "resource", "", "(Required) Resource, e.g. tag or document_type.")
	c.flags.StringVar(&c.flagOperation, "operation", "", "(Required) Operation, e.g. create or getById.")
	c.flags.StringVar(&c.flagParams, "params", "", "JSON file with the parameter set.")
	c.flags.StringVar(&c.flagOut, "out", "", "Destination file of a download.")
	c.flags.Var(&c.params, "p", "Parameter as key=value; repeatable, overrides -params.")
}

func (c *RequestCommand) Run(args []string) int {
	c.registerFlags()
	if !c.parse(args) {
		return ExitError
	}

	if c.flagResource == "" || c.flagOperation == "" {
		c.ui.Error("-resource and -operation are required")
		return ExitError
	}
	resource, err := models.ParseResource(c.flagResource)
	if err != nil {
		c.ui.Error(err.Error())
		return ExitError
	}
	op, err := models.ParseOperation(resource, c.flagOperation)
	if err != nil {
		c.ui.Error(err.Error())
		return ExitError
	}
	if !service.Supports(resource, op) {
		c.ui.Error(fmt.Sprintf("%s is not supported for %s; supported: %s", op, resource, operationList(resource)))
		return ExitError
	}

	params, err := loadParams(c.flagParams, c.params.values)
	if err != nil {
		c.ui.Error(err.Error())
		return ExitError
	}

	rt, err := c.setup(true, false)
	if err != nil {
		c.ui.Error(err.Error())
		return ExitError
	}
	defer rt.Close()

	result, err := rt.services.ResourceService.Execute(rt.ctx, resource, op, params)
	if err != nil {
		c.ui.Error(err.Error())
		return ExitError
	}

	if result.Binary != nil {
		return c.writeDownload(result.Binary)
	}

	if err = c.printRawJSON(result.JSON); err != nil {
		c.ui.Error(err.Error())
		return ExitError
	}
	return ExitOK
}

type downloadOutput struct {
	FileName string `json:"fileName"`
	MimeType string `json:"mimeType"`
	FileSize int    `json:"fileSize"`
	Path     string `json:"path"`
}

func (c *RequestCommand) writeDownload(file *models.BinaryData) int {
	dst := c.flagOut
	if dst == "" {
		dst = filepath.Base(file.FileName)
	}

	if err := os.WriteFile(dst, file.Data, 0o644); err != nil {
		c.ui.Error(fmt.Sprintf("write download: %v", err))
		return ExitError
	}

	out := map[string]downloadOutput{
		models.BinaryProperty: {
			FileName: file.FileName,
			MimeType: file.MimeType,
			FileSize: len(file.Data),
			Path:     dst,
		},
	}
	if err := c.printJSON(out); err != nil {
		c.ui.Error(err.Error())
		return ExitError
	}
	return ExitOK
}

func resourceList() string {
	names := make([]string, 0, len(models.Resources))
	for _, r := range models.Resources {
		names = append(names, string(r))
	}
	return strings.Join(names, ", ")
}

func operationList(r models.Resource) string {
	ops := service.SupportedOperations(r)
	names := make([]string, 0, len(ops))
	for _, op := range ops {
		names = append(names, string(op))
	}
	return strings.Join(names, ", ")
}
