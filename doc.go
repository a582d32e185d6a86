/*
Package sitebuilder publishes the 'Stay Home and Learn' resource page from a
Google Sheets workbook to an S3 hosted static site.

sitebuilder can be used from the command line but is really intended to be run
unattended (either from a cron job or with the built-in scheduler) to keep the
published page in sync with the workbook.

sitebuilder supports the following commands:

  - fetch, to download every sheet of the workbook to local CSV files
  - render, to generate the static site from a template and the CSV files
  - publish, to upload the rendered site to the S3 bucket
  - build, to run fetch, render and publish in sequence
  - schedule, to run build periodically on a fixed interval
*/
package sitebuilder
