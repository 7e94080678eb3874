// Package vkxml loads Vulkan-style registry documents into a declaration
// tree. It is a plain structural decode of the parts the generator consumes
// (enum blocks, feature requirements, extension blocks); it performs no
// schema validation and resolves nothing.
package vkxml
